package utils

import (
	"time"
)

// Transaction timestamps are shown to customers in Peru local time.
func ConvertDateTimeToHumanReadableFormat(datetime int64) (string, error) {
	t := time.Unix(datetime, 0)
	location := time.FixedZone("PET", -5*60*60)
	limaTime := t.In(location)
	outputFormat := "02 January 2006, 15:04 PET"
	formattedDateTime := limaTime.Format(outputFormat)

	return formattedDateTime, nil
}
