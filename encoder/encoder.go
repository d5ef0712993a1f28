package encoder

import (
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	ffmpeg "github.com/u2takey/ffmpeg-go"
)

// Options configures a video recording.
type Options struct {
	OutputFile string
	FFMPEGPath string
	Codec      string
	Width      int
	Height     int
	FPS        int
}

// Recorder streams raw RGBA frames into an ffmpeg process. Frames are handed
// over a buffered channel so the render thread never waits on the encoder
// beyond that buffer.
type Recorder struct {
	frames   chan []byte
	done     chan error
	frameLen int
	written  int
}

const frameBuffer = 3

// NewRecorder starts ffmpeg reading rawvideo from a pipe.
func NewRecorder(opts Options) (*Recorder, error) {
	if opts.Width <= 0 || opts.Height <= 0 || opts.FPS <= 0 {
		return nil, fmt.Errorf("invalid recording geometry %dx%d@%d", opts.Width, opts.Height, opts.FPS)
	}
	inputArgs, outputArgs := getArgs(opts)
	stream := ffmpeg.Input("pipe:", inputArgs).
		Output(opts.OutputFile, outputArgs).
		OverWriteOutput().ErrorToStdOut()
	if opts.FFMPEGPath != "" {
		stream = stream.SetFfmpegPath(opts.FFMPEGPath)
	}
	log.Printf("Recording %dx%d at %d fps to %s", opts.Width, opts.Height, opts.FPS, opts.OutputFile)
	return newRecorder(opts.Width*opts.Height*4, func(r io.Reader) error {
		return stream.WithInput(r).Run()
	}), nil
}

func getArgs(opts Options) (inputArgs ffmpeg.KwArgs, outputArgs ffmpeg.KwArgs) {
	inputArgs = ffmpeg.KwArgs{
		"format":  "rawvideo",
		"pix_fmt": "rgba",
		"s":       fmt.Sprintf("%dx%d", opts.Width, opts.Height),
		"r":       opts.FPS,
	}

	outputArgs = ffmpeg.KwArgs{
		// GL rows arrive bottom first
		"vf":      "vflip",
		"pix_fmt": "yuv420p",
	}
	switch opts.Codec {
	case "hevc":
		outputArgs["c:v"] = "libx265"
		if strings.HasSuffix(opts.OutputFile, ".mp4") {
			outputArgs["tag:v"] = "hvc1"
		}
	default:
		outputArgs["c:v"] = "libx264"
	}
	return
}

// newRecorder wires the frame channel to a consumer running run on the read
// side of a pipe.
func newRecorder(frameLen int, run func(r io.Reader) error) *Recorder {
	rec := &Recorder{
		frames:   make(chan []byte, frameBuffer),
		done:     make(chan error, 1),
		frameLen: frameLen,
	}
	pipeReader, pipeWriter := io.Pipe()

	errc := make(chan error, 1)
	go func() {
		err := run(pipeReader)
		// unblock the writer if the encoder exits early
		pipeReader.CloseWithError(errors.Join(io.ErrClosedPipe, err))
		errc <- err
	}()

	go func() {
		var writeErr error
		for frame := range rec.frames {
			if writeErr != nil {
				continue
			}
			if _, err := pipeWriter.Write(frame); err != nil {
				writeErr = err
				log.Printf("Error writing frame to encoder: %v", err)
			}
		}
		pipeWriter.Close()
		runErr := <-errc
		if runErr == nil && writeErr != nil {
			runErr = writeErr
		}
		rec.done <- runErr
	}()
	return rec
}

// WriteFrame queues one frame. The slice is owned by the recorder afterwards.
func (r *Recorder) WriteFrame(pixels []byte) error {
	if len(pixels) != r.frameLen {
		return fmt.Errorf("frame is %d bytes, want %d", len(pixels), r.frameLen)
	}
	r.frames <- pixels
	r.written++
	return nil
}

// Frames returns the number of frames queued so far.
func (r *Recorder) Frames() int {
	return r.written
}

// Close flushes queued frames and waits for the encoder to exit.
func (r *Recorder) Close() error {
	close(r.frames)
	if err := <-r.done; err != nil {
		return fmt.Errorf("encoder failed: %w", err)
	}
	return nil
}
