package pool

import (
	"bufio"
	"bytes"
	"io"

	"code.linenisgreat.com/spackle/go/src/_/interfaces"
)

var (
	bufioReader = Make[bufio.Reader](nil, nil)
	bufioWriter = Make[bufio.Writer](nil, nil)
	byteBuffers = MakeWithResetable[bytes.Buffer]()
)

func GetByteBuffer() (buffer *bytes.Buffer, repool interfaces.FuncRepool) {
	buffer, repool = byteBuffers.GetWithRepool()
	return buffer, repool
}

func GetBufferedWriter(
	writer io.Writer,
) (bufferedWriter *bufio.Writer, repool interfaces.FuncRepool) {
	bufferedWriter, repool = bufioWriter.GetWithRepool()
	bufferedWriter.Reset(writer)
	return bufferedWriter, repool
}

func GetBufferedReader(
	reader io.Reader,
) (bufferedReader *bufio.Reader, repool interfaces.FuncRepool) {
	bufferedReader, repool = bufioReader.GetWithRepool()
	bufferedReader.Reset(reader)
	return bufferedReader, repool
}
