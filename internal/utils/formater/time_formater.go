package formater

import (
	"time"
)

// operator's fixed timezone
var mskLocation = time.FixedZone("MSK", 3*60*60)

// CreateStreamStartTime renders the platform's UTC start timestamp as
// "HH:MM DD/MM/YYYY" in the operator's timezone, zero-padded.
func CreateStreamStartTime(streamTime time.Time) string {
	return streamTime.In(mskLocation).Format("15:04 02/01/2006")
}
