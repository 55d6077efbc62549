package models

// SegmentView is one report segment as delivered to the page. HTML is set
// for prose segments only (server-rendered markdown); diagram segments are
// rendered client-side from Text.
type SegmentView struct {
	Kind string `json:"kind" example:"prose"`
	Text string `json:"text"`
	HTML string `json:"html,omitempty"`
}

// AnalyzeResponse carries both consumers of the segmentation result: the
// interactive segment sequence and the standalone export document built from
// the same sequence. ExportError is set instead of the document when export
// generation fails; the report itself is still usable.
type AnalyzeResponse struct {
	FileName       string        `json:"file_name" example:"app.py"`
	Language       string        `json:"language" example:"python"`
	Segments       []SegmentView `json:"segments"`
	ExportFileName string        `json:"export_file_name,omitempty" example:"app_analysis.html"`
	ExportHTML     string        `json:"export_html,omitempty"`
	ExportError    string        `json:"export_error,omitempty"`
}

// DiagramCount reports how many diagram segments the response holds.
func (r *AnalyzeResponse) DiagramCount() int {
	n := 0
	for _, s := range r.Segments {
		if s.Kind == "diagram" {
			n++
		}
	}
	return n
}
