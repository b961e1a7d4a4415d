package domain

// platformToRouting maps Riot platform codes to the broad routing
// cluster used by the account and match endpoints.
var platformToRouting = map[string]string{
	"na1":  "americas",
	"br1":  "americas",
	"la1":  "americas",
	"la2":  "americas",
	"euw1": "europe",
	"eun1": "europe",
	"tr1":  "europe",
	"ru":   "europe",
	"kr":   "asia",
	"jp1":  "asia",
	"oc1":  "sea",
}

// RoutingRegion resolves a platform code like "na1" or "kr" to its
// routing cluster. Unmapped platforms fall back to americas, matching
// the upstream default.
func RoutingRegion(platform string) string {
	if routing, ok := platformToRouting[platform]; ok {
		return routing
	}
	return "americas"
}
