package request

import (
	"github.com/arloliu/go-uds/internal/hexenc"
	"github.com/arloliu/go-uds/uds"
)

// Upload download services.

// RequestDownload encodes a request to initiate a data transfer from the
// client to the server. dataFormatIdentifier carries the compression method
// in its high nibble and the encrypting method in its low nibble; the
// memoryAddress and memorySize widths are taken from the formatIdentifier
// nibbles, exactly as in ReadMemoryByAddress.
func (b *Builder) RequestDownload(dataFormatIdentifier, formatIdentifier, memoryAddress, memorySize int) string {
	addressWidth, sizeWidth := addressWidths(formatIdentifier)
	return join(
		sidTok(uds.RD),
		b.byteTok(uds.RD, "dataFormatIdentifier", dataFormatIdentifier),
		b.byteTok(uds.RD, "addressAndLengthFormatIdentifier", formatIdentifier),
		hexenc.Fixed(memoryAddress, addressWidth),
		hexenc.Fixed(memorySize, sizeWidth),
	)
}

// RequestUpload encodes a request to initiate a data transfer from the
// server to the client. Parameters are encoded exactly as in
// RequestDownload.
func (b *Builder) RequestUpload(dataFormatIdentifier, formatIdentifier, memoryAddress, memorySize int) string {
	addressWidth, sizeWidth := addressWidths(formatIdentifier)
	return join(
		sidTok(uds.RU),
		b.byteTok(uds.RU, "dataFormatIdentifier", dataFormatIdentifier),
		b.byteTok(uds.RU, "addressAndLengthFormatIdentifier", formatIdentifier),
		hexenc.Fixed(memoryAddress, addressWidth),
		hexenc.Fixed(memorySize, sizeWidth),
	)
}

// TransferData encodes one block of an upload or download transfer. The
// block sequence counter starts at 0x01 for the first block after
// RequestDownload or RequestUpload and wraps after 0xFF.
func (b *Builder) TransferData(blockSequenceCounter int, parameterRecord ...int) string {
	return join(
		sidTok(uds.TD),
		b.byteTok(uds.TD, "blockSequenceCounter", blockSequenceCounter),
		hexenc.List(parameterRecord),
	)
}

// RequestTransferExit encodes the request terminating an upload or download
// transfer. The optional parameterRecord carries transfer finalization data.
func (b *Builder) RequestTransferExit(parameterRecord ...int) string {
	return join(sidTok(uds.RTE), hexenc.List(parameterRecord))
}

// RequestFileTransfer encodes a file operation request for modes that carry
// no file size information, such as delete or directory read.
// filePathAndName holds the raw bytes of the server file system path;
// filePathAndNameLength is its declared byte length, rendered as a minimal
// big-endian sequence.
func (b *Builder) RequestFileTransfer(modeOfOperation, filePathAndNameLength int, filePathAndName []int) string {
	return join(
		sidTok(uds.RFT),
		b.byteTok(uds.RFT, "modeOfOperation", modeOfOperation),
		hexenc.Minimal(filePathAndNameLength),
		hexenc.List(filePathAndName),
	)
}

// RequestFileTransferWithSizes is the RequestFileTransfer form used by add,
// replace and read operations, carrying the data format identifier and the
// uncompressed and compressed file sizes. fileSizeParameterLength declares
// the byte length of each size record.
func (b *Builder) RequestFileTransferWithSizes(
	modeOfOperation, filePathAndNameLength int, filePathAndName []int,
	dataFormatIdentifier, fileSizeParameterLength int,
	fileSizeUncompressed, fileSizeCompressed []int,
) string {
	return join(
		sidTok(uds.RFT),
		b.byteTok(uds.RFT, "modeOfOperation", modeOfOperation),
		hexenc.Minimal(filePathAndNameLength),
		hexenc.List(filePathAndName),
		b.byteTok(uds.RFT, "dataFormatIdentifier", dataFormatIdentifier),
		b.byteTok(uds.RFT, "fileSizeParameterLength", fileSizeParameterLength),
		hexenc.List(fileSizeUncompressed),
		hexenc.List(fileSizeCompressed),
	)
}
