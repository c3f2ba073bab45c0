// Package intio 공백으로 구분된 정수 텍스트 읽기/쓰기
package intio

import (
	"bufio"
	"io"
	"os"
	"strconv"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
)

const bufSize = 64 * 1024 // 64KB 버퍼

// ErrNoIntegers 입력에서 정수를 하나도 읽지 못함
var ErrNoIntegers = errors.New("no integers read")

// ReadInts 공백 구분 10진 정수를 읽는다.
// 토큰 앞부분의 [+-]?숫자 만큼만 정수로 읽고, 그 뒤에 다른 문자가 붙어 있거나
// 숫자로 시작하지 않는 토큰을 만나면 멈춘다 ("12x"는 12까지 읽고 멈춤).
// 토큰 전체를 버퍼에 담지 않으므로 아주 긴 잘못된 토큰도 읽은 값을 잃지 않는다.
func ReadInts(r io.Reader, logger *zap.Logger) ([]int, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	br := bufio.NewReaderSize(r, bufSize)
	var (
		data   []int
		digits []byte
	)
	for {
		c, err := skipSpace(br)
		if err == io.EOF {
			return data, nil
		}
		if err != nil {
			return nil, errors.Wrap(err, "scan input")
		}

		digits = digits[:0]
		if c == '+' || c == '-' {
			digits = append(digits, c)
			c, err = br.ReadByte()
		}
		for err == nil && isDigit(c) {
			digits = append(digits, c)
			c, err = br.ReadByte()
		}
		if err != nil && err != io.EOF {
			return nil, errors.Wrap(err, "scan input")
		}
		atEnd := err == io.EOF || isSpace(c)

		num, convErr := strconv.Atoi(string(digits))
		if convErr == nil {
			data = append(data, num)
		}
		if convErr != nil || !atEnd {
			token := digits
			if !atEnd {
				token = append(token, c)
			}
			logger.Warn("non-integer token in input; stopping read",
				zap.String("token", truncate(token)),
				zap.Int("read", len(data)))
			return data, nil
		}
	}
}

func skipSpace(br *bufio.Reader) (byte, error) {
	for {
		c, err := br.ReadByte()
		if err != nil || !isSpace(c) {
			return c, err
		}
	}
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func isDigit(c byte) bool { return '0' <= c && c <= '9' }

// truncate 로그용으로 앞부분만
func truncate(token []byte) string {
	const limit = 32
	if len(token) > limit {
		return string(token[:limit]) + "..."
	}
	return string(token)
}

// ReadFile path에서 정수를 읽는다. 하나도 없으면 ErrNoIntegers
func ReadFile(path string, logger *zap.Logger) ([]int, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open input %s", path)
	}
	defer file.Close()

	data, err := ReadInts(file, logger)
	if err != nil {
		return nil, errors.Wrapf(err, "read input %s", path)
	}
	if len(data) == 0 {
		return nil, errors.Wrapf(ErrNoIntegers, "%s", path)
	}
	return data, nil
}

// WriteInts 한 줄에 하나씩, 각 값 뒤에 개행
func WriteInts(w io.Writer, data []int) error {
	writer := bufio.NewWriterSize(w, bufSize)

	var scratch [24]byte
	for _, num := range data {
		line := strconv.AppendInt(scratch[:0], int64(num), 10)
		line = append(line, '\n')
		if _, err := writer.Write(line); err != nil {
			return errors.Wrap(err, "write output")
		}
	}
	return errors.Wrap(writer.Flush(), "flush output")
}

// WriteFile path를 새로 만들어 data를 쓴다
func WriteFile(path string, data []int) error {
	file, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "create output %s", path)
	}

	if err := WriteInts(file, data); err != nil {
		file.Close()
		return errors.Wrapf(err, "write %s", path)
	}
	return errors.Wrapf(file.Close(), "close %s", path)
}

// EnsureDir dir이 없으면 만든다. 디렉터리가 아닌 파일이 이미 있으면 에러
func EnsureDir(dir string) error {
	info, err := os.Stat(dir)
	switch {
	case err == nil:
		if !info.IsDir() {
			return errors.Newf("path exists but is not a directory: %s", dir)
		}
		return nil
	case !os.IsNotExist(err):
		return errors.Wrapf(err, "stat %s", dir)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrapf(err, "mkdir %s", dir)
	}
	return nil
}
