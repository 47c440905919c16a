// Package timezone keeps every date the hotel reasons about in one location.
//
// Stay dates (check-in, check-out, task and event dates) are calendar dates: ParseDate
// accepts YYYY-MM-DD or RFC3339 and truncates to midnight in the hotel timezone, so a
// booking made from another zone still lands on the intended night. Audit timestamps use Now.
//
// The location comes from APP_TIMEZONE (an IANA name such as "Asia/Jakarta") and falls back
// to UTC when unset or unknown.
package timezone
