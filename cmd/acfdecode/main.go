package main

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/adeline-acf/acf-video-tool/acf"
	"github.com/adeline-acf/acf-video-tool/acfconv"
	"github.com/adeline-acf/acf-video-tool/hexline"
)

// pcxSink writes each decoded frame to <dir>/<prefix>PCX_<n>.pcx, and
// collects camera and audio side effects for the commands that need them.
type pcxSink struct {
	dir        string
	prefix     string
	frameIndex int
	dumpValue  bool

	vue   *acfconv.VUEBuilder
	audio *acfconv.AudioBuilder
}

func (s *pcxSink) EmitFrame(frame *acf.DecodedFrame, status acf.DecodeStatus) {
	if status.Degraded {
		fmt.Printf("Frame %d: degraded (%s)\n", s.frameIndex, status.Reason)
	}
	if s.dir != "" {
		path := filepath.Join(s.dir, fmt.Sprintf("%sPCX_%d.pcx", s.prefix, s.frameIndex))
		out, err := os.Create(path)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		defer out.Close()
		if err := acfconv.WritePCX(out, frame); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	}
	if s.dumpValue {
		spew.Dump(frame)
	}
	s.frameIndex++
}

func (s *pcxSink) EmitCamera(frameIndex int, camera acf.Camera) {
	if s.vue != nil {
		s.vue.Add(frameIndex, camera)
	}
}

func (s *pcxSink) EmitAudio(tag string, payload []byte) {
	if s.audio == nil {
		return
	}
	switch tag {
	case "SoundBuf", "SoundFrm":
		s.audio.AddPCM(payload)
	case "SAL_COMP":
		if !acfconv.ProbeOpusPayload(payload, s.audio.SampleRate(), 1) {
			s.audio.AddPCM(payload)
		}
	}
}

func readFile(filename string) []byte {
	data, err := os.ReadFile(filename)
	if err != nil {
		fmt.Printf("Could not read file '%s': %v\n", filename, err)
		os.Exit(1)
	}
	return data
}

func main() {
	debugValue := false

	rootCommand := &cobra.Command{
		Use:   "acfdecode",
		Short: "ACF video container decoder",
		Long: `
This tool decodes the legacy chunked ACF full-motion-video container: video
frames to PCX-style stills, camera records to a textual animation file, and
audio blobs to WAV.
`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if debugValue {
				acf.SetLogLevel(logrus.DebugLevel)
				acfconv.SetLogLevel(logrus.DebugLevel)
				hexline.SetLogLevel(logrus.DebugLevel)
			}
		},
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Help()
			os.Exit(1)
		},
	}
	rootCommand.PersistentFlags().BoolVar(&debugValue, "debug", false, "Enable debug output")

	{
		infoCommand := &cobra.Command{
			Use:   "info <filename> [...]",
			Short: "Show format and frame-count information for the given file(s)",
			Args:  cobra.MinimumNArgs(1),
			Run: func(cmd *cobra.Command, args []string) {
				for _, filename := range args {
					fmt.Printf("File: %s\n", filename)
					parser := acf.NewParser(readFile(filename))
					if _, err := parser.Run(nil); err != nil {
						fmt.Printf("Error: %v\n", err)
						continue
					}
					format := parser.Format()
					fmt.Printf("   Width x Height: %d x %d\n", format.Width, format.Height)
					fmt.Printf("   Tiles per frame: %d\n", format.TileCount())
					fmt.Printf("   Compressor: %d\n", format.Compressor)
					fmt.Printf("   Frames decoded: %d\n", parser.FrameCount())
				}
			},
		}
		rootCommand.AddCommand(infoCommand)
	}

	{
		dumpValue := false
		framesCommand := &cobra.Command{
			Use:   "frames <input-file> [<input-file> ...] <output-directory>",
			Short: "Decode every video frame of one or more files to PCX-style still images",
			Args:  cobra.MinimumNArgs(2),
			Run: func(cmd *cobra.Command, args []string) {
				inputFiles, outputDirectory := args[:len(args)-1], args[len(args)-1]
				if err := os.MkdirAll(outputDirectory, 0o755); err != nil {
					fmt.Printf("Error: %v\n", err)
					os.Exit(1)
				}
				for _, inputFile := range inputFiles {
					prefix := ""
					if len(inputFiles) > 1 {
						prefix = strings.TrimSuffix(filepath.Base(inputFile), filepath.Ext(inputFile)) + "_"
					}
					sink := &pcxSink{dir: outputDirectory, prefix: prefix, dumpValue: dumpValue}
					parser := acf.NewParser(readFile(inputFile))
					count, err := parser.Run(sink)
					if err != nil {
						fmt.Printf("Error decoding %s: %v\n", inputFile, err)
						continue
					}
					fmt.Printf("%s: decoded %d frames.\n", inputFile, count)
				}
			},
		}
		framesCommand.Flags().BoolVar(&dumpValue, "dump", false, "Dump every decoded frame with go-spew")
		rootCommand.AddCommand(framesCommand)
	}

	{
		cameraCommand := &cobra.Command{
			Use:   "camera <input-file> <output.vue>",
			Short: "Export camera records to a textual animation file",
			Args:  cobra.ExactArgs(2),
			Run: func(cmd *cobra.Command, args []string) {
				inputFile, outputFile := args[0], args[1]
				sink := &pcxSink{vue: acfconv.NewVUEBuilder()}
				parser := acf.NewParser(readFile(inputFile))
				if _, err := parser.Run(sink); err != nil {
					fmt.Printf("Error: %v\n", err)
					os.Exit(1)
				}
				if err := os.WriteFile(outputFile, []byte(sink.vue.String()), 0o644); err != nil {
					fmt.Printf("Error: %v\n", err)
					os.Exit(1)
				}
			},
		}
		rootCommand.AddCommand(cameraCommand)
	}

	{
		audioCommand := &cobra.Command{
			Use:   "audio <input-file> <output.wav>",
			Short: "Export SoundBuf/SoundFrm audio blobs to a WAV file",
			Args:  cobra.ExactArgs(2),
			Run: func(cmd *cobra.Command, args []string) {
				inputFile, outputFile := args[0], args[1]
				sink := &pcxSink{audio: acfconv.NewAudioBuilder(8000)}
				parser := acf.NewParser(readFile(inputFile))
				if _, err := parser.Run(sink); err != nil {
					fmt.Printf("Error: %v\n", err)
					os.Exit(1)
				}
				if rate := parser.Format().AudioSampleRate; rate > 0 {
					sink.audio = acfconv.NewAudioBuilder(int(rate))
				}

				out, err := os.Create(outputFile)
				if err != nil {
					fmt.Printf("Error: %v\n", err)
					os.Exit(1)
				}
				defer out.Close()
				if err := acfconv.WriteWAV(out, sink.audio.IntBuffer()); err != nil {
					fmt.Printf("Error: %v\n", err)
					os.Exit(1)
				}
			},
		}
		rootCommand.AddCommand(audioCommand)
	}

	{
		byteLimit := 0
		dumpCommand := &cobra.Command{
			Use:   "dump <input-file> <chunk-index>",
			Short: "Hex-dump the raw payload of one chunk",
			Args:  cobra.ExactArgs(2),
			Run: func(cmd *cobra.Command, args []string) {
				inputFile := args[0]
				chunkIndex, err := strconv.Atoi(args[1])
				if err != nil {
					fmt.Printf("Invalid chunk index: %v\n", err)
					os.Exit(1)
				}

				data := readFile(inputFile)
				offset := 0
				index := 0
				for offset+12 <= len(data) {
					tag := string(data[offset : offset+8])
					size := int(binary.LittleEndian.Uint32(data[offset+8 : offset+12]))
					payloadStart := offset + 12
					payloadEnd := payloadStart + size
					if payloadEnd > len(data) {
						fmt.Printf("Chunk %q claims %d bytes past end of file.\n", tag, size)
						os.Exit(1)
					}
					if index == chunkIndex {
						fmt.Printf("Chunk %d: %q (%d bytes)\n", index, tag, size)
						reader := bytes.NewReader(data[payloadStart:payloadEnd])
						hexline.Write(os.Stdout, reader, int64(byteLimit), 16)
						return
					}
					index++
					offset = payloadEnd
					if tag == "End     " {
						break
					}
				}
				fmt.Printf("Chunk index %d not found (%d chunks).\n", chunkIndex, index)
				os.Exit(1)
			},
		}
		dumpCommand.Flags().IntVar(&byteLimit, "byte-limit", 0, "The number of bytes to print; 0 for no limit")
		rootCommand.AddCommand(dumpCommand)
	}

	if err := rootCommand.Execute(); err != nil {
		panic(err)
	}
}
