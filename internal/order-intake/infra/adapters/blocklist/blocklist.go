// Package blocklist holds the static set of known disposable-email
// domains. The set is read-only after construction, so a single instance
// is safe to share across requests.
package blocklist

import "strings"

// disposableDomains is checked by exact match against the lowercased
// email domain. Extend here when new throwaway providers show up in the
// honeypot logs.
var disposableDomains = []string{
	"0-mail.com",
	"10minutemail.com",
	"10minutemail.net",
	"20minutemail.com",
	"33mail.com",
	"anonbox.net",
	"burnermail.io",
	"byom.de",
	"deadaddress.com",
	"discard.email",
	"dispostable.com",
	"emailondeck.com",
	"fakeinbox.com",
	"fakemail.net",
	"getairmail.com",
	"getnada.com",
	"guerrillamail.com",
	"guerrillamail.net",
	"guerrillamail.org",
	"harakirimail.com",
	"inboxkitten.com",
	"incognitomail.org",
	"jetable.org",
	"mail-temp.com",
	"mail.tm",
	"mailcatch.com",
	"maildrop.cc",
	"mailinator.com",
	"mailnesia.com",
	"mailsac.com",
	"mintemail.com",
	"moakt.com",
	"mohmal.com",
	"mytemp.email",
	"nada.email",
	"sharklasers.com",
	"spam4.me",
	"spamgourmet.com",
	"tempail.com",
	"temp-mail.io",
	"temp-mail.org",
	"tempinbox.com",
	"tempmail.dev",
	"tempmailo.com",
	"tempr.email",
	"throwawaymail.com",
	"trash-mail.com",
	"trashmail.com",
	"trashmail.me",
	"yopmail.com",
	"yopmail.fr",
	"yopmail.net",
}

type Static struct {
	domains map[string]struct{}
}

// NewStatic builds the lookup set once at startup. extra domains from
// configuration are merged in.
func NewStatic(extra ...string) *Static {
	domains := make(map[string]struct{}, len(disposableDomains)+len(extra))
	for _, d := range disposableDomains {
		domains[d] = struct{}{}
	}
	for _, d := range extra {
		if d = strings.ToLower(strings.TrimSpace(d)); d != "" {
			domains[d] = struct{}{}
		}
	}
	return &Static{domains: domains}
}

func (s *Static) Contains(domain string) bool {
	_, ok := s.domains[strings.ToLower(domain)]
	return ok
}
