package app

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"vdjann/internal/output"
	"vdjann/pkg/api"
)

const (
	vSeq = "ATGGCCCTGTGGCTGAGCGGCGCCAGACTGTGT"
	jSeq = "TGGGGCAAAGGCACCACGGTC"
	cSeq = "GCCTCCACCAAGGGCCCATCGGTC"

	insert30 = "GCCAGAGATCGGAGCAGCTACTACTTTGAC"
)

func writeReference(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ref.fa")
	ref := fmt.Sprintf(">TRBV1|V|frame=0|anchor=30\n%s\n>TRBJ1|J|frame=0|anchor=0\n%s\n>TRBC1|C\n%s\n",
		vSeq, jSeq, cSeq)
	require.NoError(t, os.WriteFile(path, []byte(ref), 0o644))
	return path
}

func writeContigs(t *testing.T, recs map[string]string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "contigs.fa")
	var b strings.Builder
	for _, id := range sortedKeys(recs) {
		fmt.Fprintf(&b, ">%s\n%s\n", id, recs[id])
	}
	require.NoError(t, os.WriteFile(path, []byte(b.String()), 0o644))
	return path
}

func sortedKeys(m map[string]string) []string {
	ks := make([]string, 0, len(m))
	for k := range m {
		ks = append(ks, k)
	}
	sort.Strings(ks)
	return ks
}

func TestRunTextEndToEnd(t *testing.T) {
	ref := writeReference(t)
	contigs := writeContigs(t, map[string]string{
		"good": vSeq + insert30 + jSeq + cSeq,
		"junk": "ACGTACGTACGT",
	})

	var out, errBuf bytes.Buffer
	code := Run([]string{"--reference", ref, "--contigs", contigs}, &out, &errBuf)
	require.Equal(t, 0, code, "stderr: %s", errBuf.String())

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	require.Equal(t, output.TSVHeader, lines[0])
	require.True(t, strings.HasPrefix(lines[1], "good\tTRBV1\t"))
	require.True(t, strings.HasSuffix(lines[1], "\ttrue\tfalse")) // productive, forward
	require.True(t, strings.HasPrefix(lines[2], "junk\t.\t"))

	// Summary lands on stderr.
	require.Contains(t, errBuf.String(), "contigs\t2")
	require.Contains(t, errBuf.String(), "productive\t1")
}

func TestRunJSONEndToEnd(t *testing.T) {
	ref := writeReference(t)
	contigs := writeContigs(t, map[string]string{
		"good": vSeq + insert30 + jSeq,
	})

	var out, errBuf bytes.Buffer
	code := Run([]string{"--reference", ref, "--contigs", contigs,
		"--output", "json", "--quiet"}, &out, &errBuf)
	require.Equal(t, 0, code, "stderr: %s", errBuf.String())
	require.Empty(t, errBuf.String())

	var got []api.AnnotationV1
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	require.Len(t, got, 1)
	require.Equal(t, "good", got[0].QueryID)
	require.NotNil(t, got[0].Junction)
	require.Equal(t, "CARDRSSYYFDW", got[0].Junction.AA)
	require.True(t, got[0].Productive)
}

func TestRunJSONLEndToEnd(t *testing.T) {
	ref := writeReference(t)
	contigs := writeContigs(t, map[string]string{
		"a": vSeq + insert30 + jSeq,
		"b": vSeq,
	})

	var out, errBuf bytes.Buffer
	code := Run([]string{"--reference", ref, "--contigs", contigs,
		"--output", "jsonl", "--quiet"}, &out, &errBuf)
	require.Equal(t, 0, code, "stderr: %s", errBuf.String())

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	var first api.AnnotationV1
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	require.Equal(t, "a", first.QueryID)
}

func TestUsageErrorExitCode(t *testing.T) {
	var out, errBuf bytes.Buffer
	code := Run([]string{"--contigs", "x.fa"}, &out, &errBuf)
	require.Equal(t, 2, code)
	require.Contains(t, errBuf.String(), "--reference")
}

func TestMissingReferenceFile(t *testing.T) {
	contigs := writeContigs(t, map[string]string{"a": vSeq})
	var out, errBuf bytes.Buffer
	code := Run([]string{"--reference", "/nonexistent/ref.fa", "--contigs", contigs}, &out, &errBuf)
	require.Equal(t, 2, code)
}

func TestMissingContigFile(t *testing.T) {
	ref := writeReference(t)
	var out, errBuf bytes.Buffer
	code := Run([]string{"--reference", ref, "--contigs", "/nonexistent/contigs.fa"}, &out, &errBuf)
	require.Equal(t, 3, code)
}

func TestVersionFlag(t *testing.T) {
	var out, errBuf bytes.Buffer
	code := Run([]string{"--version"}, &out, &errBuf)
	require.Equal(t, 0, code)
	require.Contains(t, out.String(), "vdjann version")
}

func TestHelpExitsZero(t *testing.T) {
	var out, errBuf bytes.Buffer
	code := Run([]string{"-h"}, &out, &errBuf)
	require.Equal(t, 0, code)
	require.Contains(t, out.String(), "Usage of vdjann")
}
