package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob"
	json "github.com/goccy/go-json"
)

// BlobConfig configures the Azure Blob report store.
type BlobConfig struct {
	// AccountName is the storage account; required unless Endpoint is
	// set.
	AccountName string `yaml:"accountName"`
	// AccountKey enables shared-key auth. When empty the default
	// credential chain (managed identity, CLI, env) is used.
	AccountKey string `yaml:"accountKey"`
	// Endpoint overrides the service URL, for emulators.
	Endpoint string `yaml:"endpoint"`
	// Container holds the report blobs.
	Container string `yaml:"container"`
	// Prefix is prepended to every blob path.
	Prefix string `yaml:"prefix"`
}

// BlobStore persists one JSON blob per report under
// <prefix>/reports/<yyyy-mm-dd>/<rowID>.json.
type BlobStore struct {
	client    *azblob.Client
	container string
	prefix    string
}

// NewBlobStore creates a blob-backed report store.
func NewBlobStore(cfg BlobConfig) (*BlobStore, error) {
	if cfg.Container == "" {
		return nil, fmt.Errorf("blob store container is required")
	}

	serviceURL := strings.TrimSuffix(cfg.Endpoint, "/")
	if serviceURL == "" {
		if cfg.AccountName == "" {
			return nil, fmt.Errorf("blob store account name or endpoint is required")
		}
		serviceURL = fmt.Sprintf("https://%s.blob.core.windows.net", cfg.AccountName)
	}

	client, err := buildBlobClient(serviceURL, cfg)
	if err != nil {
		return nil, err
	}

	return &BlobStore{
		client:    client,
		container: cfg.Container,
		prefix:    strings.Trim(cfg.Prefix, "/"),
	}, nil
}

func buildBlobClient(serviceURL string, cfg BlobConfig) (*azblob.Client, error) {
	if cfg.AccountKey != "" {
		cred, err := azblob.NewSharedKeyCredential(cfg.AccountName, cfg.AccountKey)
		if err != nil {
			return nil, fmt.Errorf("shared key credential: %w", err)
		}
		return azblob.NewClientWithSharedKeyCredential(serviceURL, cred, nil)
	}

	credential, err := azidentity.NewDefaultAzureCredential(nil)
	if err != nil {
		return nil, fmt.Errorf("default azure credential: %w", err)
	}
	return azblob.NewClient(serviceURL, credential, nil)
}

func (s *BlobStore) blobPath(partition, rowID string) string {
	path := fmt.Sprintf("reports/%s/%s.json", partition, rowID)
	if s.prefix == "" {
		return path
	}
	return s.prefix + "/" + path
}

// Save implements ReportStore.
func (s *BlobStore) Save(ctx context.Context, record ReportRecord) error {
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("marshal report record: %w", err)
	}

	path := s.blobPath(record.PartitionKey, record.RowID)
	if _, err := s.client.UploadStream(ctx, s.container, path, bytes.NewReader(data), nil); err != nil {
		return fmt.Errorf("upload report blob %s: %w", path, err)
	}
	return nil
}

// History implements ReportStore. Blobs are partitioned by generation
// date, so listing walks one day-prefix per day in the range.
func (s *BlobStore) History(ctx context.Context, start, end time.Time) ([]ReportRecord, error) {
	var records []ReportRecord

	for day := start.UTC().Truncate(24 * time.Hour); !day.After(end.UTC()); day = day.AddDate(0, 0, 1) {
		prefix := s.blobPath(day.Format("2006-01-02"), "")
		prefix = strings.TrimSuffix(prefix, ".json")

		pager := s.client.NewListBlobsFlatPager(s.container, &azblob.ListBlobsFlatOptions{
			Prefix: &prefix,
		})
		for pager.More() {
			page, err := pager.NextPage(ctx)
			if err != nil {
				return nil, fmt.Errorf("list report blobs: %w", err)
			}
			for _, item := range page.Segment.BlobItems {
				if item.Name == nil {
					continue
				}
				record, err := s.downloadRecord(ctx, *item.Name)
				if err != nil {
					return nil, err
				}
				if record.GeneratedAt.Before(start) || record.GeneratedAt.After(end) {
					continue
				}
				records = append(records, record)
			}
		}
	}

	return records, nil
}

func (s *BlobStore) downloadRecord(ctx context.Context, name string) (ReportRecord, error) {
	resp, err := s.client.DownloadStream(ctx, s.container, name, nil)
	if err != nil {
		return ReportRecord{}, fmt.Errorf("download report blob %s: %w", name, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return ReportRecord{}, fmt.Errorf("read report blob %s: %w", name, err)
	}

	var record ReportRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return ReportRecord{}, fmt.Errorf("decode report blob %s: %w", name, err)
	}
	return record, nil
}
