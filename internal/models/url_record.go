package models

import "time"

// UrlRecord is the storage representation of an extracted URL, one row per
// occurrence in a scan session's parquet file.
type UrlRecord struct {
	SessionID          string    `parquet:"session_id,plain_dictionary,utf8" json:"session_id"`
	SourcePath         string    `parquet:"source_path,plain_dictionary,utf8" json:"source_path"`
	Value              string    `parquet:"value,plain_dictionary,utf8" json:"value"`
	Scheme             string    `parquet:"scheme,plain_dictionary,utf8" json:"scheme"`
	Host               string    `parquet:"host,plain_dictionary,utf8" json:"host"`
	Path               string    `parquet:"path,plain_dictionary,utf8" json:"path"`
	Line               int32     `parquet:"line" json:"line"`
	Column             int32     `parquet:"column" json:"column"`
	Context            string    `parquet:"context,plain_dictionary,utf8" json:"context"`
	DiscoveryTimestamp time.Time `parquet:"discovery_timestamp,timestamp" json:"discovery_timestamp"`
}
