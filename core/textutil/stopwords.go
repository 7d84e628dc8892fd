// ABOUTME: Process-wide immutable stopword and blocked-phrase sets for English
// ABOUTME: Loaded once at init and shared read-only across concurrent requests

package textutil

import "strings"

// stopwordSource holds the English stopword inventory: core function words,
// common verbs/adjectives, and generic web-content vocabulary that drowns out
// domain terms when left in frequency rankings.
const stopwordSource = `
a an and are as at be by for from has have how i in is it its of on or that the
to was were what when where which who why will with you your
about across after also because before can could does each find get good great
help here into like make many may more most much new now off one our out over
see show since some take than then there these thing things those through try
under use used using very via way well while within without work year years
whom whose today yesterday tomorrow really quite rather just only even still
too such so less least few several any all every both either neither no not
never always often sometimes usually generally typically commonly frequently
rarely seldom got getting made making took taking give gave giving go went
going come came coming saw seeing look looked looking found finding want wanted
wanting need needed needing know knew knowing think thought thinking feel felt
feeling bad big small large little old young high low long short wide narrow
thick thin easy hard difficult simple complex important necessary possible
impossible available unavailable ready click clicked clicking page pages
website web site link links button buttons menu menus form forms data
information content text image images file files download downloads upload
uploads search searches searching result results list lists item items product
products service services tool tools feature features option options
`

// blockedPhraseSource lists n-grams that carry no descriptive value: filler
// constructions, web boilerplate, navigation and generic marketing phrases.
const blockedPhraseSource = `
if you|you d like|d like to|like to|need to|want to|going to|trying to
planning to|looking to|in the|on the|at the|of the|to the|for the|with the
it s|that s|there s|here s|what s|how s|when s|you re|they re|we re|i m
click here|learn more|read more|find out|get started|sign up|sign in|log in
create account|join now|subscribe to|follow us|contact us|get in touch
best in|top rated|award winning|trusted by|used by|recommended by|chosen by
selected by|featured in|home page|main page|about us|our services|our products
customer support|help center|faq|privacy policy|terms of service
in this article|in this guide|in this post|in this blog|as mentioned|as stated
as noted|according to|for example|for instance|such as|like this
cookie policy|terms of use|disclaimer|copyright|all rights reserved
powered by|built with|take a look|check out|have a look|give it a try
start using|begin using|continue reading|keep reading
`

var (
	stopwords      map[string]struct{}
	blockedPhrases []string
)

func init() {
	stopwords = make(map[string]struct{})
	for _, w := range strings.Fields(stopwordSource) {
		stopwords[w] = struct{}{}
	}
	for _, line := range strings.Split(strings.TrimSpace(blockedPhraseSource), "\n") {
		for _, p := range strings.Split(line, "|") {
			p = strings.TrimSpace(p)
			if p != "" {
				blockedPhrases = append(blockedPhrases, p)
			}
		}
	}
}

// IsStopword reports whether the lowercase token is a stopword.
func IsStopword(token string) bool {
	_, ok := stopwords[token]
	return ok
}

// IsBlockedPhrase reports whether the phrase contains any blocked span.
func IsBlockedPhrase(phrase string) bool {
	lp := strings.ToLower(phrase)
	for _, blocked := range blockedPhrases {
		if strings.Contains(lp, blocked) {
			return true
		}
	}
	return false
}
