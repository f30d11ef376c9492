// Package spec holds the constants shared between the firmware and the host tools.
package spec

const (
	// === IDENTITY & VERSIONING ===
	Version = "1.0.0"

	// === AUDIO FRONT END (sound.c) ===
	SampleRate      = 16000
	SamplesLog2     = 10
	SamplesPerBlock = 1 << SamplesLog2
	BytesPerSample  = 2

	// Satu blok FFT = 1024 pasangan int32 (re, im)
	FFTBlockBytes = SamplesPerBlock * 4 * 2
	// Satu blok PCM mentah = 1024 sampel int16
	SoundBlockBytes = SamplesPerBlock * BytesPerSample

	// Kira-kira 10 detik audio
	CaptureBlocks = 160

	// === LOG FFT MAPPING ===
	TopFreq    = 7812.5
	LogSpacing = 1.22
	LogBands   = 21

	// === LED COLOUR TABLES ===
	InterpSteps = 4

	// === USB CONSOLE ===
	DefaultSerialPort = "/dev/cu.usbmodem14201"
	SerialPortEnv     = "PARANOID_SERIAL_PORT"
	ConsolePrompt     = "\x1b[31mP\x1b[33ma\x1b[32mr\x1b[36ma\x1b[34mn\x1b[35mo\x1b[37mi\x1b[0md!> "

	// Manifest JSON ditulis di samping file dump
	ManifestSuffix = ".json"
)
