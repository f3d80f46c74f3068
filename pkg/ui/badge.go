// Package ui holds the presentation helpers shared by the dashboard templates:
// status badges, class-name joining, relative dates, health-score colours and
// the light/dark theme.
package ui

import (
	"strings"
)

// Variant is the visual style of a badge.
type Variant string

const (
	VariantSuccess Variant = "success"
	VariantWarning Variant = "warning"
	VariantDanger  Variant = "danger"
	VariantInfo    Variant = "info"
	VariantNeutral Variant = "neutral"
)

const badgeBaseClass = "inline-flex items-center rounded-full px-2.5 py-0.5 text-xs font-medium"

var variantClasses = map[Variant]string{ //nolint: gochecknoglobals
	VariantSuccess: "bg-green-100 text-green-800 dark:bg-green-900 dark:text-green-200",
	VariantWarning: "bg-yellow-100 text-yellow-800 dark:bg-yellow-900 dark:text-yellow-200",
	VariantDanger:  "bg-red-100 text-red-800 dark:bg-red-900 dark:text-red-200",
	VariantInfo:    "bg-blue-100 text-blue-800 dark:bg-blue-900 dark:text-blue-200",
	VariantNeutral: "bg-gray-100 text-gray-800 dark:bg-gray-800 dark:text-gray-200",
}

// Badge is a rendered status label.
type Badge struct {
	Label   string
	Variant Variant
}

// Class returns the CSS classes of the badge.
func (b Badge) Class() string {
	return CN(badgeBaseClass, variantClasses[b.Variant])
}

type badgeTable map[string]Badge

// lookup matches status case-insensitively. Unknown values keep their raw
// text on a neutral badge.
func (t badgeTable) lookup(status string) Badge {
	key := strings.ToLower(strings.TrimSpace(status))
	if b, ok := t[key]; ok {
		return b
	}
	if key == "" {
		return Badge{Label: "Unknown", Variant: VariantNeutral}
	}

	return Badge{Label: strings.TrimSpace(status), Variant: VariantNeutral}
}

var (
	siteBadges = badgeTable{ //nolint: gochecknoglobals
		"active":   {"Active", VariantSuccess},
		"pending":  {"Pending", VariantWarning},
		"crawling": {"Crawling", VariantInfo},
		"paused":   {"Paused", VariantNeutral},
		"error":    {"Error", VariantDanger},
	}
	scanBadges = badgeTable{ //nolint: gochecknoglobals
		"pending":   {"Pending", VariantWarning},
		"running":   {"Running", VariantInfo},
		"completed": {"Completed", VariantSuccess},
		"failed":    {"Failed", VariantDanger},
	}
	jobBadges = badgeTable{ //nolint: gochecknoglobals
		"pending":           {"Pending", VariantWarning},
		"queued":            {"Queued", VariantWarning},
		"processing":        {"Processing", VariantInfo},
		"awaiting_approval": {"Awaiting approval", VariantInfo},
		"completed":         {"Completed", VariantSuccess},
		"failed":            {"Failed", VariantDanger},
	}
	approvalBadges = badgeTable{ //nolint: gochecknoglobals
		"pending":  {"Pending", VariantWarning},
		"approved": {"Approved", VariantSuccess},
		"rejected": {"Rejected", VariantDanger},
	}
	subscriptionBadges = badgeTable{ //nolint: gochecknoglobals
		"active":     {"Active", VariantSuccess},
		"trialing":   {"Trial", VariantInfo},
		"incomplete": {"Incomplete", VariantWarning},
		"past_due":   {"Past due", VariantWarning},
		"unpaid":     {"Unpaid", VariantDanger},
		"canceled":   {"Canceled", VariantNeutral},
	}
)

func SiteStatusBadge(status string) Badge         { return siteBadges.lookup(status) }
func ScanStatusBadge(status string) Badge         { return scanBadges.lookup(status) }
func JobStatusBadge(status string) Badge          { return jobBadges.lookup(status) }
func ApprovalStatusBadge(status string) Badge     { return approvalBadges.lookup(status) }
func SubscriptionStatusBadge(status string) Badge { return subscriptionBadges.lookup(status) }
