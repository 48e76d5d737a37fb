package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	"github.com/buildbarn/bb-datafile/pkg/configuration"
	"github.com/buildbarn/bb-datafile/pkg/datafile"
	"github.com/buildbarn/bb-storage/pkg/clock"
	"github.com/buildbarn/bb-storage/pkg/util"
	"github.com/spf13/pflag"
)

// bb_datafile is a utility for inspecting and modifying data files.
// Item payloads are read from standard input and written to standard
// output. Items are identified by their start block.
//
// Usage:
//
//	bb_datafile [flags] insert
//	bb_datafile [flags] get start_block [offset length]
//	bb_datafile [flags] size start_block
//	bb_datafile [flags] update start_block [offset]
//	bb_datafile [flags] append start_block
//	bb_datafile [flags] truncate start_block remove_size
//	bb_datafile [flags] delete start_block
//	bb_datafile [flags] list|stat|trim|clear

func parseInt(name, value string) int {
	n, err := strconv.Atoi(value)
	if err != nil {
		log.Fatalf("Invalid %s %#v: %s", name, value, err)
	}
	return n
}

func readStdin() []byte {
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		log.Fatal("Failed to read standard input: ", err)
	}
	return data
}

func main() {
	configPath := pflag.String("config", "", "Path of a Jsonnet configuration file. Overrides all other flags")
	path := pflag.String("path", "", "Path of the data file")
	blockSizeBytes := pflag.Int("block-size", 4096, "Size of every block in bytes, including the block header")
	initialBlockCapacity := pflag.Int("initial-capacity", 16, "Number of blocks in a newly created data file")
	capacityIncrement := pflag.Int("capacity-increment", 16, "Minimum number of blocks by which the data file is grown")
	readOnly := pflag.Bool("read-only", false, "Open the data file read-only")
	pflag.SetInterspersed(false)
	pflag.Parse()
	args := pflag.Args()
	if len(args) == 0 {
		log.Fatal("Expected a command")
	}

	var config configuration.DataFileConfiguration
	if *configPath != "" {
		if err := configuration.UnmarshalConfigurationFromFile(*configPath, &config); err != nil {
			log.Fatal("Failed to read configuration: ", err)
		}
	} else {
		if *path == "" {
			log.Fatal("Either --config or --path must be provided")
		}
		config = configuration.DataFileConfiguration{
			Backend: configuration.StorageBackendConfiguration{
				File: &configuration.FileConfiguration{Path: *path},
			},
			BlockSizeBytes:       *blockSizeBytes,
			InitialBlockCapacity: *initialBlockCapacity,
			CapacityIncrement:    *capacityIncrement,
			ReadOnly:             *readOnly,
		}
	}

	dataFile, err := datafile.NewDataFileFromConfiguration(&config, clock.SystemClock, util.DefaultErrorLogger)
	if err != nil {
		log.Fatal("Failed to open data file: ", err)
	}

	if err := runCommand(dataFile, args[0], args[1:]); err != nil {
		log.Fatalf("Failed to run command %#v: %s", args[0], err)
	}
	if !config.ReadOnly {
		if err := dataFile.Sync(); err != nil {
			log.Fatal("Failed to synchronize data file: ", err)
		}
	}
	if err := dataFile.Close(); err != nil {
		log.Fatal("Failed to close data file: ", err)
	}
}

func expectArguments(command string, args []string, counts ...int) {
	for _, count := range counts {
		if len(args) == count {
			return
		}
	}
	log.Fatalf("Invalid number of arguments for command %#v", command)
}

func runCommand(dataFile datafile.DataFile, command string, args []string) error {
	switch command {
	case "insert":
		expectArguments(command, args, 0)
		startBlock, err := dataFile.InsertItemData(readStdin())
		if err != nil {
			return err
		}
		fmt.Println(startBlock)
	case "get":
		expectArguments(command, args, 1, 3)
		startBlock := parseInt("start block", args[0])
		var data []byte
		var err error
		if len(args) == 3 {
			data, err = dataFile.GetPartialItemData(startBlock, parseInt("offset", args[1]), parseInt("length", args[2]))
		} else {
			data, err = dataFile.GetItemData(startBlock)
		}
		if err != nil {
			return err
		}
		if _, err := os.Stdout.Write(data); err != nil {
			return err
		}
	case "size":
		expectArguments(command, args, 1)
		size, err := dataFile.GetItemSize(parseInt("start block", args[0]))
		if err != nil {
			return err
		}
		fmt.Println(size)
	case "update":
		expectArguments(command, args, 1, 2)
		startBlock := parseInt("start block", args[0])
		if len(args) == 2 {
			return dataFile.UpdatePartialItemData(startBlock, parseInt("offset", args[1]), readStdin())
		}
		return dataFile.UpdateItemData(startBlock, readStdin())
	case "append":
		expectArguments(command, args, 1)
		return dataFile.AppendItemData(parseInt("start block", args[0]), readStdin())
	case "truncate":
		expectArguments(command, args, 2)
		return dataFile.DeletePartialItemData(parseInt("start block", args[0]), parseInt("remove size", args[1]))
	case "delete":
		expectArguments(command, args, 1)
		return dataFile.DeleteItemData(parseInt("start block", args[0]))
	case "list":
		expectArguments(command, args, 0)
		startBlocks, err := dataFile.GetDataStartBlocks()
		if err != nil {
			return err
		}
		for _, startBlock := range startBlocks {
			size, err := dataFile.GetItemSize(startBlock)
			if err != nil {
				return err
			}
			fmt.Printf("%d\t%d\n", startBlock, size)
		}
	case "stat":
		expectArguments(command, args, 0)
		stats := dataFile.GetStatistics()
		fmt.Printf("File ID:                %s\n", stats.FileID)
		fmt.Printf("Block size:             %d bytes\n", stats.BlockSizeBytes)
		fmt.Printf("Payload size:           %d bytes\n", stats.PayloadSizeBytes)
		fmt.Printf("Header size:            %d bytes\n", stats.HeaderSizeBytes)
		fmt.Printf("Initial block capacity: %d blocks\n", stats.InitialBlockCapacity)
		fmt.Printf("Block capacity:         %d blocks\n", stats.BlockCapacity)
		fmt.Printf("Allocated blocks:       %d blocks\n", stats.AllocatedBlocks)
		fmt.Printf("Space in use:           %d blocks\n", stats.SpaceInUseBlocks)
	case "trim":
		expectArguments(command, args, 0)
		return dataFile.TrimToSize()
	case "clear":
		expectArguments(command, args, 0)
		return dataFile.ClearAllBlocks()
	default:
		log.Fatalf("Unknown command %#v", command)
	}
	return nil
}
