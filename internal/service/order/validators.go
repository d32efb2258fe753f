package order

import "strings"

func isValidOrderID(orderID string) bool {
	return strings.TrimSpace(orderID) != ""
}

func isValidRejectionReason(reason string) bool {
	return strings.TrimSpace(reason) != ""
}
