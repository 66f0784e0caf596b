package source

import "github.com/luispauloloureiro/unfdashboard/internal/model"

// Sample returns the built-in example dataset used when the live fetch
// fails, so the dashboard is never left empty. Returns a fresh copy each
// call; callers treat record sets as immutable but the fallback must not
// be shared state.
func Sample() []model.Record {
	base := []model.Record{
		{
			model.FieldServer: "EU22",
			model.FieldUser:   "romario2816",
			model.FieldPlayer: "-[150] UNF Kursliov",
			model.FieldEvent:  "Guerra de castelo",
			model.FieldProof:  "https://example.com/image1.png",
			model.FieldDate:   "23/11/2025",
			model.FieldTime:   "17:46",
			model.FieldNote:   "",
		},
		{
			model.FieldServer: "EU22",
			model.FieldUser:   "romario2816",
			model.FieldPlayer: "-[150] UNF Kursliov",
			model.FieldEvent:  "Stand",
			model.FieldProof:  "https://example.com/image2.png",
			model.FieldDate:   "19/11/2025",
			model.FieldTime:   "14:08",
			model.FieldNote:   "",
		},
		{
			model.FieldServer: "EU22",
			model.FieldUser:   "romario2816",
			model.FieldPlayer: "-[150] UNF Kursliov",
			model.FieldEvent:  "Wb",
			model.FieldProof:  "https://example.com/image3.png",
			model.FieldDate:   "19/11/2025",
			model.FieldTime:   "15:07",
			model.FieldNote:   "",
		},
		{
			model.FieldServer: "EU22",
			model.FieldUser:   "romario2816",
			model.FieldPlayer: "-[150] UNF Kursliov",
			model.FieldEvent:  "Stand",
			model.FieldProof:  "https://example.com/image4.png",
			model.FieldDate:   "19/11/2025",
			model.FieldTime:   "16:06",
			model.FieldNote:   "",
		},
		{
			model.FieldServer: "EU22",
			model.FieldUser:   "romario2816",
			model.FieldPlayer: "-[150] UNF Kursliov",
			model.FieldEvent:  "Wb",
			model.FieldProof:  "https://example.com/image5.png",
			model.FieldDate:   "19/11/2025",
			model.FieldTime:   "17:10",
			model.FieldNote:   "",
		},
	}

	out := make([]model.Record, len(base))
	for i, rec := range base {
		cp := make(model.Record, len(rec))
		for k, v := range rec {
			cp[k] = v
		}
		out[i] = cp
	}
	return out
}
