package cli

import (
	"fmt"
	"strings"

	"github.com/tradesmith/tradesmith-cli/pkg/models"
)

// ValidateCollectionName validates a trade collection name
func ValidateCollectionName(name string) error {
	if name == "" {
		return fmt.Errorf("collection name cannot be empty")
	}

	invalidChars := []string{"/", "\\", "..", "~", "$", "`", " "}
	for _, char := range invalidChars {
		if strings.Contains(name, char) {
			return fmt.Errorf("collection name contains invalid character: %s", char)
		}
	}

	return nil
}

// ValidateTradeID validates a trade identifier
func ValidateTradeID(id string) error {
	if !models.ValidTradeID(id) {
		return fmt.Errorf("invalid trade id: %s (letters, digits and underscores, at most 32 characters)", id)
	}
	return nil
}

// ValidateOutputFormat validates the output format flag
func ValidateOutputFormat(format string) error {
	validFormats := []string{"text", "json", "yaml"}
	for _, valid := range validFormats {
		if format == valid {
			return nil
		}
	}
	return fmt.Errorf("invalid output format: %s (must be: text, json, or yaml)", format)
}

// Contains checks if a string is in a slice
func Contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
