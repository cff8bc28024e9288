package entity

// Missing is reported in place of a title or meta description the page lacks.
const Missing = "Missing"

// VitalsUnavailable is the fixed value of every Core Web Vitals field.
const VitalsUnavailable = "Data not available via basic requests"

// CoreWebVitals is a placeholder; the metrics need a real browser to measure.
type CoreWebVitals struct {
	LCP string `json:"LCP"`
	FID string `json:"FID"`
	CLS string `json:"CLS"`
}

// PlaceholderVitals returns the fixed Core Web Vitals record.
func PlaceholderVitals() CoreWebVitals {
	return CoreWebVitals{
		LCP: VitalsUnavailable,
		FID: VitalsUnavailable,
		CLS: VitalsUnavailable,
	}
}

// AuditReport is the result of auditing a single page.
type AuditReport struct {
	Title           string        `json:"title"`
	MetaDescription string        `json:"metaDescription"`
	H1Tags          []string      `json:"h1Tags"`
	BrokenLinks     []string      `json:"brokenLinks"`
	LoadTime        float64       `json:"loadTime"` // seconds
	MobileFriendly  bool          `json:"mobileFriendly"`
	CoreWebVitals   CoreWebVitals `json:"coreWebVitals"`
}
