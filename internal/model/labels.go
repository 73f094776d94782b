package model

// AddLabel appends label to the list, preserving insertion order.
// Adding a string that is already present (exact match) is a no-op.
func AddLabel(labels []string, label string) []string {
	for _, existing := range labels {
		if existing == label {
			return labels
		}
	}
	return append(labels, label)
}

// RemoveLabel removes the exact label from the list, if present.
func RemoveLabel(labels []string, label string) []string {
	for i, existing := range labels {
		if existing == label {
			return append(labels[:i], labels[i+1:]...)
		}
	}
	return labels
}
