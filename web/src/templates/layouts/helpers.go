package layouts

// SiteName is appended to every page title.
const SiteName = "Card Components"

// CalculateTitle handles the conditional logic for the page title.
func CalculateTitle(title string) string {
	if title != "" {
		return title + " - " + SiteName
	}
	return SiteName
}
