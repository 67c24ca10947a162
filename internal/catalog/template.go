package catalog

import (
	"cmp"
	"encoding/json"
	"fmt"
	"path"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/gorewood/ignorecat/internal/settings"
)

// Kind classifies a template. Root, Global and User are origins;
// Starred only ever appears as a classification.
type Kind int

const (
	KindRoot Kind = iota
	KindGlobal
	KindUser
	KindStarred
)

// Suffix is stripped from bundled file names to form template names.
const Suffix = ".gitignore"

// globalDir marks bundled templates meant for the global excludes file.
const globalDir = "Global"

// ErrEmptyName is returned when a template would have no name. It is the
// settings sentinel, so either package's name matches with errors.Is.
var ErrEmptyName = settings.ErrEmptyName

func (k Kind) String() string {
	switch k {
	case KindRoot:
		return "root"
	case KindGlobal:
		return "global"
	case KindUser:
		return "user"
	case KindStarred:
		return "starred"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// MarshalText encodes the kind by name.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// ParseKind parses a kind name as printed by String.
func ParseKind(s string) (Kind, error) {
	for _, k := range []Kind{KindRoot, KindGlobal, KindUser, KindStarred} {
		if strings.EqualFold(s, k.String()) {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown template kind %q (want root, global, user, or starred)", s)
}

// Template is a named block of ignore rules and where it came from.
type Template struct {
	Name    string
	Content string
	// Path is the bundle path; empty for user templates.
	Path    string
	Origin  Kind
	Starred bool
}

// FromBundled builds a template from a bundled resource. The name is the
// file name without Suffix; the origin is KindGlobal when the parent
// directory is Global.
func FromBundled(resourcePath, content string) (Template, error) {
	clean := strings.TrimPrefix(path.Clean("/"+resourcePath), "/")
	name := strings.TrimSuffix(path.Base(clean), Suffix)
	if name == "" || name == "." {
		return Template{}, fmt.Errorf("%w: %s", ErrEmptyName, resourcePath)
	}

	origin := KindRoot
	if path.Base(path.Dir(clean)) == globalDir {
		origin = KindGlobal
	}

	return Template{
		Name:    name,
		Content: content,
		Path:    clean,
		Origin:  origin,
	}, nil
}

// FromUser builds a template from a user-defined settings entry.
func FromUser(user settings.UserTemplate) (Template, error) {
	if strings.TrimSpace(user.Name) == "" {
		return Template{}, ErrEmptyName
	}
	return Template{
		Name:    user.Name,
		Content: user.Content,
		Origin:  KindUser,
	}, nil
}

// Classification is KindStarred for starred templates and Origin otherwise.
func (t Template) Classification() Kind {
	if t.Starred {
		return KindStarred
	}
	return t.Origin
}

// Is reports whether the template belongs to kind. KindStarred matches
// starred templates of any origin; the other kinds match Origin.
func (t Template) Is(kind Kind) bool {
	if kind == KindStarred {
		return t.Starred
	}
	return t.Origin == kind
}

// Filter returns the templates for which keep is true, in order.
func Filter(templates []Template, keep func(Template) bool) []Template {
	out := make([]Template, 0, len(templates))
	for _, tmpl := range templates {
		if keep(tmpl) {
			out = append(out, tmpl)
		}
	}
	return out
}

// Bundled reports whether the template ships with the binary.
func (t Template) Bundled() bool {
	return t.Origin == KindRoot || t.Origin == KindGlobal
}

func (t Template) String() string {
	return t.Name
}

// MarshalJSON includes the derived classification.
func (t Template) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Name           string `json:"name"`
		Content        string `json:"content"`
		Path           string `json:"path,omitempty"`
		Origin         Kind   `json:"origin"`
		Starred        bool   `json:"starred"`
		Classification Kind   `json:"classification"`
	}{
		Name:           t.Name,
		Content:        t.Content,
		Path:           t.Path,
		Origin:         t.Origin,
		Starred:        t.Starred,
		Classification: t.Classification(),
	})
}

// Compare orders templates by name, ignoring case. Runes are folded one
// at a time; when one name is a folded prefix of the other, the shorter
// sorts first.
func Compare(a, b Template) int {
	x, y := a.Name, b.Name
	for x != "" && y != "" {
		rx, nx := utf8.DecodeRuneInString(x)
		ry, ny := utf8.DecodeRuneInString(y)
		if rx != ry {
			if fx, fy := foldRune(rx), foldRune(ry); fx != fy {
				return cmp.Compare(fx, fy)
			}
		}
		x, y = x[nx:], y[ny:]
	}
	return cmp.Compare(len(x), len(y))
}

func foldRune(r rune) rune {
	return unicode.ToLower(unicode.ToUpper(r))
}

// Sort orders templates by Compare. Names equal under Compare keep their
// relative order.
func Sort(templates []Template) {
	slices.SortStableFunc(templates, Compare)
}
