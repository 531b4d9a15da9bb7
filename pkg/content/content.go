// Package content holds the static page data: the bilingual profile tables,
// the console's canned responses and the shared panel data (neofetch facts,
// shortcuts, log seeds). Everything is embedded YAML decoded once on first
// use.
package content

import (
	"embed"
	"fmt"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed data/*.yaml
var files embed.FS

// Locale selects a profile table.
type Locale string

const (
	English  Locale = "en"
	Japanese Locale = "ja"
)

// Locales lists the supported locales in toggle order.
func Locales() []Locale {
	return []Locale{English, Japanese}
}

// ParseLocale validates a locale key.
func ParseLocale(s string) (Locale, error) {
	switch l := Locale(strings.ToLower(strings.TrimSpace(s))); l {
	case English, Japanese:
		return l, nil
	}
	return "", fmt.Errorf("content: unknown locale %q", s)
}

// Next returns the other locale.
func (l Locale) Next() Locale {
	if l == Japanese {
		return English
	}
	return Japanese
}

// Label is the switcher text that selects l.
func (l Locale) Label() string {
	if l == Japanese {
		return "日本語"
	}
	return "EN"
}

// Hero is the page header block.
type Hero struct {
	Greeting   string   `yaml:"greeting"`
	Title      string   `yaml:"title"`
	Subtitle   string   `yaml:"subtitle"`
	Prompt     string   `yaml:"prompt"`
	LikesIntro string   `yaml:"likes_intro"`
	Likes      []string `yaml:"likes"`
}

// Contact holds the outbound links.
type Contact struct {
	Email  string `yaml:"email"`
	GitHub string `yaml:"github"`
}

// Experience is one timeline card.
type Experience struct {
	Company string   `yaml:"company"`
	Role    string   `yaml:"role"`
	Period  string   `yaml:"period"`
	Focus   string   `yaml:"focus"`
	Bullets []string `yaml:"bullets"`
}

// SkillGroup is one labelled set of skill tags.
type SkillGroup struct {
	Label string   `yaml:"label"`
	Items []string `yaml:"items"`
}

// Stat is one neofetch line.
type Stat struct {
	Label string `yaml:"label"`
	Value string `yaml:"value"`
}

// Shortcut is one key-combo card.
type Shortcut struct {
	Combo string `yaml:"combo"`
	Desc  string `yaml:"desc"`
}

// Sections are the shell-style panel headings.
type Sections struct {
	Whoami     string `yaml:"whoami"`
	Interests  string `yaml:"interests"`
	Experience string `yaml:"experience"`
	Status     string `yaml:"status"`
	Shortcuts  string `yaml:"shortcuts"`
	Logs       string `yaml:"logs"`
	Skills     string `yaml:"skills"`
	Console    string `yaml:"console"`
	Watch      string `yaml:"watch"`
	Neofetch   string `yaml:"neofetch"`
	Header     string `yaml:"header"`
}

// Profile is everything one locale's page shows. The per-locale fields
// come from profile.<locale>.yaml and the shared ones from console.yaml.
type Profile struct {
	Locale        Locale       `yaml:"-"`
	Hero          Hero         `yaml:"hero"`
	Contact       Contact      `yaml:"contact"`
	Highlights    []string     `yaml:"highlights"`
	Experiences   []Experience `yaml:"experiences"`
	SkillGroups   []SkillGroup `yaml:"skill_groups"`
	TerminalLines []string     `yaml:"terminal_lines"`

	Neofetch  []Stat     `yaml:"-"`
	Shortcuts []Shortcut `yaml:"-"`
	Sections  Sections   `yaml:"-"`
	Logo      []string   `yaml:"-"`
	LogSeeds  []string   `yaml:"-"`
	LogEmpty  string     `yaml:"-"`
}

// Response is one console command and its canned text.
type Response struct {
	Name string `yaml:"name"`
	Text string `yaml:"text"`
}

// Responses is the console's static response table.
type Responses struct {
	Commands      []Response `yaml:"commands"`
	Unknown       string     `yaml:"unknown"`
	ThemeSwitched string     `yaml:"theme_switched"`
	ThemeInvalid  string     `yaml:"theme_invalid"`
}

// Text returns the canned text for name.
func (r Responses) Text(name string) (string, bool) {
	for _, c := range r.Commands {
		if c.Name == name {
			return c.Text, true
		}
	}
	return "", false
}

// Names returns the command names in table order.
func (r Responses) Names() []string {
	out := make([]string, len(r.Commands))
	for i, c := range r.Commands {
		out[i] = c.Name
	}
	return out
}

type shared struct {
	Responses `yaml:",inline"`

	Neofetch  []Stat     `yaml:"neofetch"`
	Shortcuts []Shortcut `yaml:"shortcuts"`
	Log       struct {
		Seeds     []string `yaml:"seeds"`
		Templates []string `yaml:"templates"`
		Empty     string   `yaml:"empty"`
	} `yaml:"log"`
	Sections Sections `yaml:"sections"`
	Logo     string   `yaml:"logo"`
}

var (
	loadOnce sync.Once
	loaded   struct {
		shared   shared
		profiles map[Locale]Profile
	}
	loadErr error
)

func load() error {
	loadOnce.Do(func() {
		if loadErr = decode("data/console.yaml", &loaded.shared); loadErr != nil {
			return
		}
		loaded.profiles = make(map[Locale]Profile)
		for _, l := range Locales() {
			var p Profile
			if loadErr = decode("data/profile."+string(l)+".yaml", &p); loadErr != nil {
				return
			}
			p.Locale = l
			loaded.profiles[l] = p
		}
	})
	return loadErr
}

func decode(name string, into any) error {
	raw, err := files.ReadFile(name)
	if err != nil {
		return fmt.Errorf("content: read %s: %w", name, err)
	}
	if err := yaml.Unmarshal(raw, into); err != nil {
		return fmt.Errorf("content: decode %s: %w", name, err)
	}
	return nil
}

// mustLoad panics if the embedded tables are malformed.
func mustLoad() {
	if err := load(); err != nil {
		panic(err)
	}
}

// ProfileFor returns the page content for a locale. Unknown locales get
// the English table.
func ProfileFor(l Locale) Profile {
	mustLoad()
	p, ok := loaded.profiles[l]
	if !ok {
		p = loaded.profiles[English]
	}
	sh := loaded.shared
	p.Neofetch = append([]Stat(nil), sh.Neofetch...)
	p.Shortcuts = append([]Shortcut(nil), sh.Shortcuts...)
	p.Sections = sh.Sections
	p.Logo = logoLines(sh.Logo)
	p.LogSeeds = append([]string(nil), sh.Log.Seeds...)
	p.LogEmpty = sh.Log.Empty
	return p
}

// ConsoleResponses returns the console's response table.
func ConsoleResponses() Responses {
	mustLoad()
	r := loaded.shared.Responses
	r.Commands = append([]Response(nil), r.Commands...)
	return r
}

// LogTemplates returns the diagnostic messages the log draws from.
func LogTemplates() []string {
	mustLoad()
	return append([]string(nil), loaded.shared.Log.Templates...)
}

// logoLines splits the logo, dropping trailing spaces and blank lines.
func logoLines(s string) []string {
	var out []string
	for _, l := range strings.Split(s, "\n") {
		l = strings.TrimRight(l, " \t")
		if strings.TrimSpace(l) == "" {
			continue
		}
		out = append(out, l)
	}
	return out
}
