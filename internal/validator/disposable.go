package validator

import (
	"os"
	"strings"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"
)

// disposableDomains is the built-in set of known throwaway providers.
var disposableDomains = []string{
	"tempmail.com",
	"guerrillamail.com",
	"10minutemail.com",
	"throwaway.email",
	"maildrop.cc",
	"mailinator.com",
	"trashmail.com",
	"yopmail.com",
	"temp-mail.org",
}

// webmailProviders is the built-in set of consumer webmail domains.
// Webmail is recorded as a signal but does not downgrade status.
var webmailProviders = []string{
	"gmail.com",
	"yahoo.com",
	"outlook.com",
	"hotmail.com",
	"icloud.com",
	"aol.com",
	"protonmail.com",
	"mail.com",
}

// LoadDisposableDomains reads additional disposable domains from a YAML file
// with a top-level "domains" list.
func LoadDisposableDomains(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "validator: read disposable domains %s", path)
	}

	var wrapper struct {
		Domains []string `yaml:"domains"`
	}
	if err := yaml.Unmarshal(data, &wrapper); err != nil {
		return nil, eris.Wrap(err, "validator: parse disposable domains")
	}

	out := make([]string, 0, len(wrapper.Domains))
	for _, d := range wrapper.Domains {
		d = strings.ToLower(strings.TrimSpace(d))
		if d != "" {
			out = append(out, d)
		}
	}
	return out, nil
}
