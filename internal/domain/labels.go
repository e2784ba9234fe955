package domain

import "fmt"

// Enum families are stored as compact int16 codes and exposed as canonical
// string labels. Both directions are exhaustive switches: an unknown label is
// a caller error, an unknown stored code is a data-integrity failure and is
// surfaced as an error rather than mapped to any default.

const (
	StatusPendingQuote int16 = 1
	StatusQuoted       int16 = 2
	StatusInProgress   int16 = 3
	StatusPaused       int16 = 4
	StatusCompleted    int16 = 5
	StatusClosed       int16 = 6
	StatusCancelled    int16 = 7
)

const (
	PaymentPending       int16 = 1
	PaymentPartiallyPaid int16 = 2
	PaymentPaid          int16 = 3
	PaymentOverdue       int16 = 4
)

const (
	MaterialPending   int16 = 1
	MaterialOrdered   int16 = 2
	MaterialDelivered int16 = 3
	MaterialInstalled int16 = 4
)

const (
	MediaImage int16 = 1
	MediaVideo int16 = 2
)

var ProjectStatusLabels = []string{
	"Pending Quote", "Quoted", "In Progress", "Paused", "Completed", "Closed", "Cancelled",
}

var PaymentStatusLabels = []string{
	"Pending", "Partially Paid", "Paid", "Overdue",
}

var MaterialStatusLabels = []string{
	"Pending", "Ordered", "Delivered", "Installed",
}

var MediaKindLabels = []string{"image", "video"}

func ProjectStatusCode(label string) (int16, bool) {
	switch label {
	case "Pending Quote":
		return StatusPendingQuote, true
	case "Quoted":
		return StatusQuoted, true
	case "In Progress":
		return StatusInProgress, true
	case "Paused":
		return StatusPaused, true
	case "Completed":
		return StatusCompleted, true
	case "Closed":
		return StatusClosed, true
	case "Cancelled":
		return StatusCancelled, true
	}
	return 0, false
}

func ProjectStatusLabel(code int16) (string, error) {
	switch code {
	case StatusPendingQuote:
		return "Pending Quote", nil
	case StatusQuoted:
		return "Quoted", nil
	case StatusInProgress:
		return "In Progress", nil
	case StatusPaused:
		return "Paused", nil
	case StatusCompleted:
		return "Completed", nil
	case StatusClosed:
		return "Closed", nil
	case StatusCancelled:
		return "Cancelled", nil
	}
	return "", fmt.Errorf("project status code %d has no label", code)
}

func PaymentStatusCode(label string) (int16, bool) {
	switch label {
	case "Pending":
		return PaymentPending, true
	case "Partially Paid":
		return PaymentPartiallyPaid, true
	case "Paid":
		return PaymentPaid, true
	case "Overdue":
		return PaymentOverdue, true
	}
	return 0, false
}

func PaymentStatusLabel(code int16) (string, error) {
	switch code {
	case PaymentPending:
		return "Pending", nil
	case PaymentPartiallyPaid:
		return "Partially Paid", nil
	case PaymentPaid:
		return "Paid", nil
	case PaymentOverdue:
		return "Overdue", nil
	}
	return "", fmt.Errorf("payment status code %d has no label", code)
}

func MaterialStatusCode(label string) (int16, bool) {
	switch label {
	case "Pending":
		return MaterialPending, true
	case "Ordered":
		return MaterialOrdered, true
	case "Delivered":
		return MaterialDelivered, true
	case "Installed":
		return MaterialInstalled, true
	}
	return 0, false
}

func MaterialStatusLabel(code int16) (string, error) {
	switch code {
	case MaterialPending:
		return "Pending", nil
	case MaterialOrdered:
		return "Ordered", nil
	case MaterialDelivered:
		return "Delivered", nil
	case MaterialInstalled:
		return "Installed", nil
	}
	return "", fmt.Errorf("material status code %d has no label", code)
}

func MediaKindCode(label string) (int16, bool) {
	switch label {
	case "image":
		return MediaImage, true
	case "video":
		return MediaVideo, true
	}
	return 0, false
}

func MediaKindLabel(code int16) (string, error) {
	switch code {
	case MediaImage:
		return "image", nil
	case MediaVideo:
		return "video", nil
	}
	return "", fmt.Errorf("media kind code %d has no label", code)
}
