package configuration

import (
	"bytes"
	"encoding/json"
	"os"
	"strings"
	"time"

	pb "github.com/buildbarn/bb-storage/pkg/proto/configuration/blockdevice"
	"github.com/buildbarn/bb-storage/pkg/util"
	"github.com/google/go-jsonnet"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/encoding/protojson"
)

// DataFileConfiguration contains the parameters needed to open or
// create a data file.
type DataFileConfiguration struct {
	// Where the data file is stored.
	Backend StorageBackendConfiguration `json:"backend"`

	// Size of every block, including the block header.
	BlockSizeBytes int `json:"blockSizeBytes"`
	// Size of the region preceding block zero, holding the file
	// header. Defaults to the size of the file header.
	HeaderSizeBytes int `json:"headerSizeBytes"`
	// Number of blocks in a newly created data file. The data file
	// is never shrunk below this size.
	InitialBlockCapacity int `json:"initialBlockCapacity"`
	// Minimum number of blocks by which the data file is grown.
	CapacityIncrement int `json:"capacityIncrement"`

	ReadOnly bool `json:"readOnly"`

	// If non-zero, the maximum number of blocks that may be
	// allocated at any given time.
	MaximumAllocatedBlocks int64 `json:"maximumAllocatedBlocks"`

	// If set, Prometheus metrics are exposed for the data file and
	// its block allocator, using this value as the "name" label.
	MetricsName string `json:"metricsName"`

	// Modification times of the backend exceeding the time of the
	// last write by more than this duration cause the data file to
	// be considered modified externally. Uses the syntax of
	// time.ParseDuration(), e.g. "2s".
	ModificationMargin string `json:"modificationMargin"`
}

// StorageBackendConfiguration selects where a data file is stored.
// Exactly one of the fields must be set.
type StorageBackendConfiguration struct {
	File     *FileConfiguration     `json:"file"`
	InMemory *InMemoryConfiguration `json:"inMemory"`
	// Stores a data file on a block device, or a file that is used
	// as one. Uses the format of bb-storage's
	// blockdevice.Configuration message, e.g. { devicePath: ... } or
	// { file: { path: ..., sizeBytes: ... } }.
	BlockDevice json.RawMessage `json:"blockDevice"`
}

// FileConfiguration stores a data file in a regular file.
type FileConfiguration struct {
	Path string `json:"path"`
}

// InMemoryConfiguration stores a data file in memory. The contents of
// the data file are lost when the process terminates.
type InMemoryConfiguration struct{}

// GetBlockDeviceConfiguration decodes the block device configuration,
// returning nil if none is set.
func (c *StorageBackendConfiguration) GetBlockDeviceConfiguration() (*pb.Configuration, error) {
	if len(c.BlockDevice) == 0 {
		return nil, nil
	}
	var configuration pb.Configuration
	if err := protojson.Unmarshal(c.BlockDevice, &configuration); err != nil {
		return nil, util.StatusWrapWithCode(err, codes.InvalidArgument, "Failed to unmarshal block device configuration")
	}
	return &configuration, nil
}

// GetModificationMargin parses the modification margin, returning the
// provided default value if none is set.
func (c *DataFileConfiguration) GetModificationMargin(defaultMargin time.Duration) (time.Duration, error) {
	if c.ModificationMargin == "" {
		return defaultMargin, nil
	}
	margin, err := time.ParseDuration(c.ModificationMargin)
	if err != nil {
		return 0, util.StatusWrapWithCode(err, codes.InvalidArgument, "Invalid modification margin")
	}
	if margin < 0 {
		return 0, status.Errorf(codes.InvalidArgument, "Negative modification margin: %s", margin)
	}
	return margin, nil
}

// UnmarshalConfigurationFromFile reads a Jsonnet file, evaluates it and
// unmarshals the output into a configuration struct. Environment
// variables are exposed to the Jsonnet file through std.extVar().
func UnmarshalConfigurationFromFile(path string, configuration interface{}) error {
	vm := jsonnet.MakeVM()
	for _, env := range os.Environ() {
		if name, value, ok := strings.Cut(env, "="); ok {
			vm.ExtVar(name, value)
		}
	}
	output, err := vm.EvaluateFile(path)
	if err != nil {
		return util.StatusWrapfWithCode(err, codes.InvalidArgument, "Failed to evaluate configuration file %#v", path)
	}
	return unmarshalJSON(output, configuration, path)
}

// UnmarshalConfigurationFromSnippet is identical to
// UnmarshalConfigurationFromFile(), except that it evaluates Jsonnet
// that is provided in literal form.
func UnmarshalConfigurationFromSnippet(name, snippet string, configuration interface{}) error {
	output, err := jsonnet.MakeVM().EvaluateAnonymousSnippet(name, snippet)
	if err != nil {
		return util.StatusWrapfWithCode(err, codes.InvalidArgument, "Failed to evaluate configuration %#v", name)
	}
	return unmarshalJSON(output, configuration, name)
}

func unmarshalJSON(output string, configuration interface{}, name string) error {
	decoder := json.NewDecoder(bytes.NewBufferString(output))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(configuration); err != nil {
		return util.StatusWrapfWithCode(err, codes.InvalidArgument, "Failed to unmarshal configuration %#v", name)
	}
	return nil
}
