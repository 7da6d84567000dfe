// Package report renders the bucket inventory and publishes it.
//
// # Formats
//
//   - csv (default): header "Account ID,Account Aliases,S3 Bucket Name,S3 Bucket Region,Analytics"
//     followed by one row per bucket, analytics rendered as Y or N.
//   - json: the Report envelope with run metadata and all records.
//
// # Publishing
//
// Publisher uploads a written report file to a storage bucket under
// <prefix>/<run-id>/<file name>, creating the bucket when it is missing.
//
// # Usage
//
//	r := report.New(runID, region, records)
//	if err := report.WriteFile("output.csv", report.FormatCSV, r); err != nil {
//	    return err
//	}
package report
