package pagination

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/SscSPs/hord_manager/internal/core/domain"
)

const timeFormat = time.RFC3339Nano // Use a precise time format

// EncodeMultiFieldToken creates an opaque token from any number of string fields.
func EncodeMultiFieldToken(fields ...string) string {
	tokenStr := strings.Join(fields, "|")
	return base64.URLEncoding.EncodeToString([]byte(tokenStr))
}

// DecodeMultiFieldToken decodes a token into its component fields.
func DecodeMultiFieldToken(token string) ([]string, error) {
	decodedBytes, err := base64.URLEncoding.DecodeString(token)
	if err != nil {
		return nil, fmt.Errorf("invalid pagination token format (base64 decode): %w", err)
	}
	return strings.Split(string(decodedBytes), "|"), nil
}

// EncodePriceCursor creates a token for the (period, recorded_at, id) position of a price point.
func EncodePriceCursor(c domain.PriceCursor) string {
	return EncodeMultiFieldToken(
		strconv.Itoa(c.Period),
		c.RecordedAt.UTC().Format(timeFormat),
		strconv.FormatInt(c.ID, 10),
	)
}

// DecodePriceCursor parses a token produced by EncodePriceCursor.
func DecodePriceCursor(token string) (*domain.PriceCursor, error) {
	parts, err := DecodeMultiFieldToken(token)
	if err != nil {
		return nil, err
	}
	if len(parts) != 3 {
		return nil, fmt.Errorf("invalid pagination token format (split)")
	}

	period, err := strconv.Atoi(parts[0])
	if err != nil {
		return nil, fmt.Errorf("invalid pagination token format (period parse): %w", err)
	}
	recordedAt, err := time.Parse(timeFormat, parts[1])
	if err != nil {
		return nil, fmt.Errorf("invalid pagination token format (recorded_at parse): %w", err)
	}
	id, err := strconv.ParseInt(parts[2], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid pagination token format (id parse): %w", err)
	}

	return &domain.PriceCursor{Period: period, RecordedAt: recordedAt, ID: id}, nil
}
