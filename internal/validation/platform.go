package validation

import (
	"fmt"
	"net/url"
	"strings"

	"creatorhub/internal/models"
)

// platformDomains maps each platform onto the hosts a proof URL may use.
// Subdomains of a listed domain (www, m, vm, ...) are accepted.
var platformDomains = map[models.Platform][]string{
	models.PlatformInstagram: {"instagram.com"},
	models.PlatformTikTok:    {"tiktok.com"},
	models.PlatformYouTube:   {"youtube.com", "youtu.be"},
}

// ValidatePlatform checks that the platform is one the marketplace supports.
func ValidatePlatform(platform models.Platform) error {
	if _, ok := platformDomains[platform]; !ok {
		return models.NewValidationError(fmt.Sprintf("Unknown platform %q", platform))
	}
	return nil
}

// ParseProofURL validates that raw is a syntactically valid absolute
// http(s) URL and returns its parsed form.
func ParseProofURL(raw string) (*url.URL, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, models.NewValidationError("Proof URL is required")
	}
	u, err := url.Parse(raw)
	if err != nil {
		return nil, models.NewValidationError("Proof URL is not a valid URL")
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, models.NewValidationError("Proof URL must be an absolute http or https URL")
	}
	if u.Hostname() == "" {
		return nil, models.NewValidationError("Proof URL must include a host")
	}
	return u, nil
}

// HostMatchesPlatform reports whether host belongs to the platform's domain
// set. Matching is case-insensitive and accepts subdomains, so
// "www.instagram.com" matches instagram and "vm.tiktok.com" matches tiktok.
func HostMatchesPlatform(host string, platform models.Platform) bool {
	host = strings.ToLower(strings.TrimSuffix(host, "."))
	for _, domain := range platformDomains[platform] {
		if host == domain || strings.HasSuffix(host, "."+domain) {
			return true
		}
	}
	return false
}
