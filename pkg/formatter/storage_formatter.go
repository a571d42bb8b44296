// File: pkg/formatter/storage_formatter.go
package formatter

import "s3ls/pkg/storage"

type StorageFormatter struct{}

func NewStorageFormatter() *StorageFormatter {
	return &StorageFormatter{}
}

func (f *StorageFormatter) FormatBucketList(buckets []storage.Bucket) string {
	table := NewTable([]string{"Type", "Name"})

	for _, row := range storage.BucketRows(buckets) {
		table.AddRow([]string{string(row.Kind), row.Name})
	}

	return table.String()
}

func (f *StorageFormatter) FormatObjectList(list storage.ObjectList) string {
	table := NewTable([]string{"Type", "Bucket", "Key"})

	for _, row := range list.Rows() {
		table.AddRow([]string{string(row.Kind), row.Bucket, row.Name})
	}

	return table.String()
}
