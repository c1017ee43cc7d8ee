package output

// Output format names accepted by --output.
const (
	FormatText  = "text"
	FormatJSON  = "json"
	FormatJSONL = "jsonl"
)

// TSVHeader is the canonical header row for text/TSV outputs.
// Keep this as the single source of truth; all writers should use it.
const TSVHeader = "query_id\tv_id\td_id\tj_id\tc_id\tv_score\tj_score\tjunction_nt\tjunction_aa\tframe\tin_frame\thas_stop\tproductive\trc"
