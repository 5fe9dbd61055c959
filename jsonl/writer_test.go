package jsonl_test

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/fwojciec/themec"
	"github.com/fwojciec/themec/jsonl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriter_Write(t *testing.T) {
	t.Parallel()

	t.Run("writes one line per theme", func(t *testing.T) {
		t.Parallel()

		a := &themec.Artifact{Themes: []themec.ArtifactTheme{
			{Name: "dark", Colors: []themec.ArtifactColor{
				{Name: "bg", Value: 0x000000},
				{Name: "fg", Value: 0xFFFFFF},
			}},
			{Name: "empty"},
		}}

		var buf bytes.Buffer
		require.NoError(t, jsonl.NewWriter().Write(&buf, a))

		var records []jsonl.Record
		scanner := bufio.NewScanner(&buf)
		for scanner.Scan() {
			var rec jsonl.Record
			require.NoError(t, json.Unmarshal(scanner.Bytes(), &rec))
			records = append(records, rec)
		}
		require.NoError(t, scanner.Err())

		require.Len(t, records, 2)
		assert.Equal(t, "dark", records[0].Theme)
		assert.Equal(t, []jsonl.ColorRecord{
			{Name: "bg", Value: "0x000000"},
			{Name: "fg", Value: "0xffffff"},
		}, records[0].Colors)
		assert.Equal(t, "empty", records[1].Theme)
		assert.Empty(t, records[1].Colors)
	})

	t.Run("empty colors encode as an array", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		require.NoError(t, jsonl.NewWriter().Write(&buf, &themec.Artifact{
			Themes: []themec.ArtifactTheme{{Name: "x"}},
		}))

		assert.Equal(t, `{"theme":"x","colors":[]}`+"\n", buf.String())
	})

	t.Run("propagates write errors", func(t *testing.T) {
		t.Parallel()

		err := jsonl.NewWriter().Write(failingWriter{}, &themec.Artifact{
			Themes: []themec.ArtifactTheme{{Name: "x"}},
		})

		assert.ErrorIs(t, err, errWrite)
	})
}

var errWrite = errors.New("write failed")

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errWrite }
