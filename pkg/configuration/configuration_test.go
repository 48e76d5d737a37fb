package configuration_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/buildbarn/bb-datafile/pkg/configuration"
	pb "github.com/buildbarn/bb-storage/pkg/proto/configuration/blockdevice"
	"github.com/buildbarn/bb-storage/pkg/testutil"
	"github.com/stretchr/testify/require"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestUnmarshalConfigurationFromSnippet(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		var config configuration.DataFileConfiguration
		require.NoError(t, configuration.UnmarshalConfigurationFromSnippet("test.jsonnet", `
			local kib = 1024;
			{
				backend: { blockDevice: { file: { path: '/var/lib/items.dat', sizeBytes: 64 * kib } } },
				blockSizeBytes: 4 * kib,
				initialBlockCapacity: 16,
				capacityIncrement: 32,
				maximumAllocatedBlocks: 1000,
				metricsName: 'items',
				modificationMargin: '5s',
			}
		`, &config))

		blockDeviceConfiguration, err := config.Backend.GetBlockDeviceConfiguration()
		require.NoError(t, err)
		testutil.RequireEqualProto(t, &pb.Configuration{
			Source: &pb.Configuration_File{
				File: &pb.FileConfiguration{
					Path:      "/var/lib/items.dat",
					SizeBytes: 65536,
				},
			},
		}, blockDeviceConfiguration)

		config.Backend.BlockDevice = nil
		require.Equal(t, configuration.DataFileConfiguration{
			BlockSizeBytes:         4096,
			InitialBlockCapacity:   16,
			CapacityIncrement:      32,
			MaximumAllocatedBlocks: 1000,
			MetricsName:            "items",
			ModificationMargin:     "5s",
		}, config)

		margin, err := config.GetModificationMargin(time.Second)
		require.NoError(t, err)
		require.Equal(t, 5*time.Second, margin)
	})

	t.Run("InvalidBlockDevice", func(t *testing.T) {
		var config configuration.DataFileConfiguration
		require.NoError(t, configuration.UnmarshalConfigurationFromSnippet("test.jsonnet", `{ backend: { blockDevice: { sizeBytes: 4096 } } }`, &config))
		_, err := config.Backend.GetBlockDeviceConfiguration()
		testutil.RequirePrefixedStatus(t, status.Error(codes.InvalidArgument, "Failed to unmarshal block device configuration: "), err)

		// Without a block device, no configuration is returned.
		config.Backend.BlockDevice = nil
		blockDeviceConfiguration, err := config.Backend.GetBlockDeviceConfiguration()
		require.NoError(t, err)
		require.Nil(t, blockDeviceConfiguration)
	})

	t.Run("UnknownField", func(t *testing.T) {
		var config configuration.DataFileConfiguration
		err := configuration.UnmarshalConfigurationFromSnippet("test.jsonnet", `{ blockSize: 4096 }`, &config)
		testutil.RequirePrefixedStatus(t, status.Error(codes.InvalidArgument, "Failed to unmarshal configuration \"test.jsonnet\": "), err)
	})

	t.Run("SyntaxError", func(t *testing.T) {
		var config configuration.DataFileConfiguration
		err := configuration.UnmarshalConfigurationFromSnippet("test.jsonnet", `{`, &config)
		testutil.RequirePrefixedStatus(t, status.Error(codes.InvalidArgument, "Failed to evaluate configuration \"test.jsonnet\": "), err)
	})
}

func TestUnmarshalConfigurationFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "datafile.jsonnet")
	require.NoError(t, os.WriteFile(path, []byte(`{
		backend: { file: { path: std.extVar('DATAFILE_TEST_PATH') } },
		blockSizeBytes: 512,
		readOnly: true,
	}`), 0o666))
	t.Setenv("DATAFILE_TEST_PATH", "/var/lib/items.dat")

	var config configuration.DataFileConfiguration
	require.NoError(t, configuration.UnmarshalConfigurationFromFile(path, &config))
	require.Equal(t, configuration.DataFileConfiguration{
		Backend: configuration.StorageBackendConfiguration{
			File: &configuration.FileConfiguration{Path: "/var/lib/items.dat"},
		},
		BlockSizeBytes: 512,
		ReadOnly:       true,
	}, config)

	margin, err := config.GetModificationMargin(2 * time.Second)
	require.NoError(t, err)
	require.Equal(t, 2*time.Second, margin)

	t.Run("NonexistentFile", func(t *testing.T) {
		err := configuration.UnmarshalConfigurationFromFile(filepath.Join(t.TempDir(), "nonexistent.jsonnet"), &config)
		require.Equal(t, codes.InvalidArgument, status.Code(err))
	})
}

func TestGetModificationMargin(t *testing.T) {
	config := configuration.DataFileConfiguration{ModificationMargin: "soon"}
	_, err := config.GetModificationMargin(time.Second)
	testutil.RequirePrefixedStatus(t, status.Error(codes.InvalidArgument, "Invalid modification margin: "), err)
}
