// Package sanitize supplies bluemonday policies suited to formatted field
// output. Field values are emitted raw by the formatter; callers rendering
// untrusted content opt in to sanitizing through formatter.WithSanitizer.
package sanitize

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	fieldPolicyOnce sync.Once
	fieldPolicy     *bluemonday.Policy
)

// FieldPolicy returns a shared UGC policy that also keeps the attributes the
// formatter emits (itemprop, class on labels and images, srcset/sizes on
// attachment images) and mailto links. Entity-obfuscated addresses come back
// decoded, since the policy re-serializes text.
func FieldPolicy() *bluemonday.Policy {
	fieldPolicyOnce.Do(func() {
		policy := bluemonday.UGCPolicy()
		policy.AllowAttrs("itemprop").Globally()
		policy.AllowAttrs("class").OnElements("span", "img", "a")
		policy.AllowAttrs("srcset", "sizes", "loading", "decoding").OnElements("img")
		policy.AllowURLSchemes("http", "https", "mailto")
		policy.RequireNoFollowOnLinks(false)
		fieldPolicy = policy
	})
	return fieldPolicy
}

// HTML sanitizes raw with policy, falling back to FieldPolicy when policy is
// nil.
func HTML(policy *bluemonday.Policy, raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}
	if policy == nil {
		policy = FieldPolicy()
	}
	return policy.Sanitize(raw)
}
