// File: pkg/storage/model.go
package storage

import "strings"

// Delimiter groups keys into common prefixes ("folders") on the service side
const Delimiter = "/"

type Bucket struct {
	Name string
}

// Identifies what a listing targets, parsed from the `bucket[/prefix]` argument
type ListingRequest struct {
	Bucket string
	// Empty means no prefix filter is sent to the service
	Prefix string
}

// Splits a user-supplied path on the first "/" only.
// Everything before is the bucket (possibly empty, passed through as-is),
// everything after is the key prefix.
func ParsePath(path string) ListingRequest {
	bucket, prefix, _ := strings.Cut(path, Delimiter)
	return ListingRequest{
		Bucket: bucket,
		Prefix: prefix,
	}
}

// A single page of a delimited object listing, in service order
type ObjectList struct {
	Bucket         string
	Prefix         string
	CommonPrefixes []string
	Keys           []string
}

type ListingKind string

const (
	KindBucket ListingKind = "Bucket"
	KindFolder ListingKind = "Folder"
	KindFile   ListingKind = "File"
)

type ListingRow struct {
	Kind ListingKind
	// Empty for bucket rows
	Bucket string
	Name   string
}

func BucketRows(buckets []Bucket) []ListingRow {
	rows := make([]ListingRow, 0, len(buckets))
	for _, b := range buckets {
		rows = append(rows, ListingRow{Kind: KindBucket, Name: b.Name})
	}
	return rows
}

// Rows returns folder rows followed by file rows.
// A key equal to the requested prefix is the folder marker object and is not listed as a file.
func (l ObjectList) Rows() []ListingRow {
	rows := make([]ListingRow, 0, len(l.CommonPrefixes)+len(l.Keys))

	for _, p := range l.CommonPrefixes {
		rows = append(rows, ListingRow{Kind: KindFolder, Bucket: l.Bucket, Name: p})
	}

	for _, key := range l.Keys {
		if key == l.Prefix {
			continue
		}
		rows = append(rows, ListingRow{Kind: KindFile, Bucket: l.Bucket, Name: key})
	}

	return rows
}
