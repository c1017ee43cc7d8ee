package annotate

import (
	"reflect"
	"testing"

	"vdjann-core/dna"
	"vdjann-core/refseq"
)

// Toy receptor locus used throughout: a 33 nt V ending in the conserved
// cysteine codon, a 21 nt J starting with the conserved TGGGG motif, a C
// region, and a D segment.
const (
	vSeq = "ATGGCCCTGTGGCTGAGCGGCGCCAGACTGTGT"
	jSeq = "TGGGGCAAAGGCACCACGGTC"
	cSeq = "GCCTCCACCAAGGGCCCATCGGTC"
	dSeq = "GTATTACGATTTTTGGAGTGGT"

	insert30 = "GCCAGAGATCGGAGCAGCTACTACTTTGAC" // 10 clean codons
)

func testSegments() []refseq.GeneSegment {
	return []refseq.GeneSegment{
		{ID: "TRBV1", Type: refseq.V, Seq: []byte(vSeq), Frame: 0, Anchor: 30},
		{ID: "TRBD1", Type: refseq.D, Seq: []byte(dSeq), Frame: 0, Anchor: -1},
		{ID: "TRBJ1", Type: refseq.J, Seq: []byte(jSeq), Frame: 0, Anchor: 0},
		{ID: "TRBC1", Type: refseq.C, Seq: []byte(cSeq), Frame: 0, Anchor: -1},
	}
}

func testAnnotator(t *testing.T, segs []refseq.GeneSegment) *Annotator {
	t.Helper()
	cat, err := refseq.Load(segs)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	ann, err := New(cat, DefaultConfig())
	if err != nil {
		t.Fatalf("new annotator: %v", err)
	}
	return ann
}

func TestProductiveHeavyChain(t *testing.T) {
	ann := testAnnotator(t, testSegments())
	query := Query{ID: "contig1", Seq: []byte(vSeq + insert30 + jSeq + cSeq)}

	a := ann.Annotate(query)
	if a.V == nil || a.V.Segment.ID != "TRBV1" {
		t.Fatalf("V not called: %+v", a.V)
	}
	if a.V.Ambiguous {
		t.Error("sole matching V must not be flagged ambiguous")
	}
	if a.J == nil || a.J.Segment.ID != "TRBJ1" {
		t.Fatalf("J not called: %+v", a.J)
	}
	if a.C == nil || a.C.Segment.ID != "TRBC1" {
		t.Fatalf("C not called: %+v", a.C)
	}
	if a.Junction == nil {
		t.Fatal("junction not located")
	}
	if a.Junction.Start != 30 || a.Junction.End != 66 {
		t.Errorf("junction [%d,%d), want [30,66)", a.Junction.Start, a.Junction.End)
	}
	if !a.Junction.InFrame || a.Junction.HasStop {
		t.Errorf("junction flags wrong: %+v", a.Junction)
	}
	if got := string(a.Junction.AA); got != "CARDRSSYYFDW" {
		t.Errorf("junction AA %q, want CARDRSSYYFDW", got)
	}
	if !a.Productive {
		t.Error("expected productive annotation")
	}
}

func TestLightChainWithoutD(t *testing.T) {
	ann := testAnnotator(t, testSegments())
	a := ann.Annotate(Query{ID: "lc", Seq: []byte(vSeq + insert30 + jSeq)})
	if a.D != nil {
		t.Errorf("no D expected, got %+v", a.D)
	}
	if a.C != nil {
		t.Errorf("no C expected, got %+v", a.C)
	}
	if !a.Productive {
		t.Error("V+J+junction in frame should be productive without D and C")
	}
}

func TestStopCodonBlocksProductivity(t *testing.T) {
	ann := testAnnotator(t, testSegments())
	stopInsert := "GCCAGATAACGGAGCAGCTACTACTTTGAC" // TAA in the third codon
	a := ann.Annotate(Query{ID: "stopped", Seq: []byte(vSeq + stopInsert + jSeq)})
	if a.Junction == nil {
		t.Fatal("junction should still be located")
	}
	if !a.Junction.HasStop {
		t.Error("stop codon not detected")
	}
	if a.Productive {
		t.Error("stopped rearrangement must not be productive")
	}
}

func TestOutOfFrameJunction(t *testing.T) {
	ann := testAnnotator(t, testSegments())
	a := ann.Annotate(Query{ID: "oof", Seq: []byte(vSeq + insert30[:29] + jSeq)})
	if a.Junction == nil {
		t.Fatal("junction should be located")
	}
	if a.Junction.InFrame {
		t.Error("29-base insert cannot be in frame")
	}
	if a.Productive {
		t.Error("out-of-frame rearrangement must not be productive")
	}
}

func TestFrameLaw(t *testing.T) {
	ann := testAnnotator(t, testSegments())
	for _, ins := range []string{insert30, insert30[:29], insert30[:28], insert30[:27]} {
		a := ann.Annotate(Query{ID: "q", Seq: []byte(vSeq + ins + jSeq)})
		if a.Junction == nil {
			t.Fatalf("junction missing for insert length %d", len(ins))
		}
		span := a.Junction.End - a.Junction.Start
		if (span%3 == 0) != a.Junction.InFrame {
			t.Errorf("frame law violated: span=%d in_frame=%v", span, a.Junction.InFrame)
		}
	}
}

func TestProductivityLaw(t *testing.T) {
	ann := testAnnotator(t, testSegments())
	queries := []string{
		vSeq + insert30 + jSeq + cSeq,
		vSeq + insert30 + jSeq,
		vSeq + "GCCAGATAACGGAGCAGCTACTACTTTGAC" + jSeq,
		vSeq + insert30[:29] + jSeq,
		vSeq,
		jSeq,
		"ACGT",
	}
	for _, q := range queries {
		a := ann.Annotate(Query{ID: "q", Seq: []byte(q)})
		if a.Productive {
			if a.Junction == nil || !a.Junction.InFrame || a.Junction.HasStop {
				t.Errorf("productive annotation with bad junction: %+v", a.Junction)
			}
			if a.V == nil || a.J == nil {
				t.Error("productive annotation without V and J calls")
			}
		}
	}
}

func TestCFrameInconsistencyBlocksProductivity(t *testing.T) {
	ann := testAnnotator(t, testSegments())
	// One stray base between J and C shifts the C region out of the J frame.
	a := ann.Annotate(Query{ID: "shifted", Seq: []byte(vSeq + insert30 + jSeq + "G" + cSeq)})
	if a.C == nil {
		t.Fatal("C should still be called")
	}
	if a.Junction == nil || !a.Junction.InFrame {
		t.Fatal("junction itself is unaffected by the shift")
	}
	if a.Productive {
		t.Error("frame-shifted C region must block productivity")
	}
}

func TestMinScoreThreshold(t *testing.T) {
	cat, err := refseq.Load(testSegments())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	cfg := DefaultConfig()
	cfg.MinScore = 100 // above the best possible 2*33
	ann, err := New(cat, cfg)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	a := ann.Annotate(Query{ID: "q", Seq: []byte(vSeq)})
	if a.V != nil {
		t.Errorf("call below confidence floor should be withheld, got %+v", a.V)
	}
}

func TestAmbiguousCall(t *testing.T) {
	segs := append(testSegments(),
		refseq.GeneSegment{ID: "TRBV2", Type: refseq.V, Seq: []byte(vSeq), Frame: 0, Anchor: 30})
	ann := testAnnotator(t, segs)
	a := ann.Annotate(Query{ID: "q", Seq: []byte(vSeq + insert30 + jSeq)})
	if a.V == nil {
		t.Fatal("V should be called despite the tie")
	}
	if a.V.Segment.ID != "TRBV1" {
		t.Errorf("tie should resolve to the lexicographically first id, got %s", a.V.Segment.ID)
	}
	if !a.V.Ambiguous {
		t.Error("exact score tie must set the ambiguity flag")
	}
	if a.J != nil && a.J.Ambiguous {
		t.Error("J call has no rival and must not be ambiguous")
	}
}

func TestReverseComplementOrientation(t *testing.T) {
	ann := testAnnotator(t, testSegments())
	fwd := []byte(vSeq + insert30 + jSeq)

	a := ann.Annotate(Query{ID: "flipped", Seq: dna.RevComp(fwd)})
	if !a.Rc {
		t.Fatal("reverse-complement contig not recognized")
	}
	if a.V == nil || a.J == nil {
		t.Fatalf("calls missing on reverse complement: V=%+v J=%+v", a.V, a.J)
	}
	// Coordinates refer to the reverse-complement sequence, so the junction
	// matches the forward-orientation annotation exactly.
	if a.Junction == nil || a.Junction.Start != 30 {
		t.Fatalf("junction wrong on reverse complement: %+v", a.Junction)
	}
	if got := string(a.Junction.AA); got != "CARDRSSYYFDW" {
		t.Errorf("junction AA %q, want CARDRSSYYFDW", got)
	}
	if !a.Productive {
		t.Error("productive rearrangement must stay productive when flipped")
	}

	if f := ann.Annotate(Query{ID: "fwd", Seq: fwd}); f.Rc {
		t.Error("forward contig must not be flagged rc")
	}
	if n := ann.Annotate(Query{ID: "junk", Seq: []byte("ACGTACGTACGT")}); n.Rc {
		t.Error("a contig matching neither strand reports the forward attempt")
	}
}

func TestIdempotentAndDeterministic(t *testing.T) {
	ann := testAnnotator(t, testSegments())
	qs := []Query{
		{ID: "a", Seq: []byte(vSeq + insert30 + jSeq + cSeq)},
		{ID: "b", Seq: []byte(vSeq)},
		{ID: "c", Seq: []byte("ACGT")},
	}
	first := ann.AnnotateAll(qs)
	for run := 0; run < 5; run++ {
		if again := ann.AnnotateAll(qs); !reflect.DeepEqual(first, again) {
			t.Fatalf("run %d differed from first run", run)
		}
	}
	if len(first) != len(qs) || first[0].QueryID != "a" || first[2].QueryID != "c" {
		t.Fatal("AnnotateAll must preserve input order")
	}
}
