package server

import (
	"context"
	"log/slog"
	"time"

	"github.com/veridoc/ocr-review/constants"
	reviewpb "github.com/veridoc/ocr-review/gen/proto/review/v1"
	"github.com/veridoc/ocr-review/internal/review"
	"github.com/veridoc/ocr-review/internal/utils"
)

type ReviewServer struct {
	reviewpb.UnimplementedReviewServiceServer
	svc    *review.Service
	logger *slog.Logger
}

func NewReviewServer(svc *review.Service, logger *slog.Logger) *ReviewServer {
	if logger == nil {
		logger = slog.Default()
	}
	return &ReviewServer{svc: svc, logger: logger}
}

func (s *ReviewServer) IngestDocument(ctx context.Context, req *reviewpb.IngestDocumentRequest) (*reviewpb.IngestDocumentResponse, error) {
	res, err := s.svc.IngestDocument(ctx, review.IngestDocumentRequest{
		Filename:       req.GetFilename(),
		ContentType:    req.GetContentType(),
		StoragePath:    req.GetStoragePath(),
		Payload:        req.GetPayload(),
		PageImagePaths: req.GetPageImagePaths(),
	})
	if err != nil {
		return nil, err
	}
	return &reviewpb.IngestDocumentResponse{
		Document: utils.ToPBDocument(res.Document),
		Pages:    int32(res.Pages),
		Words:    int32(res.Words),
		Quality:  utils.ToPBQuality(res.Quality, res.Decision),
	}, nil
}

func (s *ReviewServer) GetDocument(ctx context.Context, req *reviewpb.GetDocumentRequest) (*reviewpb.GetDocumentResponse, error) {
	detail, err := s.svc.GetDocument(ctx, req.GetDocumentId())
	if err != nil {
		return nil, err
	}
	pages := make([]*reviewpb.Page, 0, len(detail.Pages))
	for i := range detail.Pages {
		pages = append(pages, utils.ToPBPage(&detail.Pages[i]))
	}
	return &reviewpb.GetDocumentResponse{
		Document: utils.ToPBDocument(detail.Document),
		Pages:    pages,
	}, nil
}

func (s *ReviewServer) GetCorrectedWords(ctx context.Context, req *reviewpb.GetCorrectedWordsRequest) (*reviewpb.GetCorrectedWordsResponse, error) {
	page, err := s.svc.GetCorrectedWords(ctx, review.GetCorrectedWordsRequest{
		DocumentID: req.GetDocumentId(),
		PageIndex:  int(req.GetPageIndex()),
	})
	if err != nil {
		return nil, err
	}
	words := make([]*reviewpb.Word, 0, len(page.Words))
	for i := range page.Words {
		words = append(words, utils.ToPBWord(&page.Words[i]))
	}
	rewrites := make([]*reviewpb.Rewrite, 0, len(page.Rewrites))
	for _, rw := range page.Rewrites {
		rewrites = append(rewrites, &reviewpb.Rewrite{
			WordRef:  words[rw.WordIndex].GetWordRef(),
			From:     rw.From,
			To:       rw.To,
			Strategy: rw.Strategy,
		})
	}
	return &reviewpb.GetCorrectedWordsResponse{Words: words, Rewrites: rewrites}, nil
}

func (s *ReviewServer) RecordCorrection(ctx context.Context, req *reviewpb.RecordCorrectionRequest) (*reviewpb.RecordCorrectionResponse, error) {
	res, err := s.svc.RecordCorrection(ctx, review.RecordCorrectionRequest{
		DocumentID:     req.GetDocumentId(),
		PageIndex:      int(req.GetPageIndex()),
		WordRef:        req.GetWordRef(),
		OriginalText:   req.GetOriginalText(),
		CorrectedText:  req.GetCorrectedText(),
		Author:         req.GetAuthor(),
		CorrectionType: req.GetCorrectionType(),
		BBox:           bboxFromWire(req.GetBbox()),
	})
	if err != nil {
		return nil, err
	}
	out := &reviewpb.RecordCorrectionResponse{
		Correction:      utils.ToPBCorrection(res.Correction),
		Orphaned:        res.Orphaned,
		WordUpdated:     res.WordUpdated,
		SampleCollected: res.SampleCollected,
	}
	if res.LexiconEntry != nil {
		out.Promoted = utils.ToPBLexiconEntry(res.LexiconEntry)
	}
	return out, nil
}

func (s *ReviewServer) GetLexicon(ctx context.Context, req *reviewpb.GetLexiconRequest) (*reviewpb.GetLexiconResponse, error) {
	scope := req.GetScope()
	rules, err := s.svc.GetLexicon(ctx, scope)
	if err != nil {
		return nil, err
	}
	if scope == "" {
		scope = constants.ScopeGlobal
	}
	out := make(map[string]*reviewpb.LexiconRule, len(rules))
	for misspelled, rule := range rules {
		out[misspelled] = &reviewpb.LexiconRule{
			Corrected: rule.Corrected,
			Frequency: int32(rule.Frequency),
		}
	}
	return &reviewpb.GetLexiconResponse{Scope: scope, Rules: out}, nil
}

func (s *ReviewServer) GetCorrectionStats(ctx context.Context, req *reviewpb.GetCorrectionStatsRequest) (*reviewpb.GetCorrectionStatsResponse, error) {
	stats, err := s.svc.GetCorrectionStats(ctx, req.GetDocumentId())
	if err != nil {
		return nil, err
	}
	out := &reviewpb.GetCorrectionStatsResponse{
		TotalCorrections: int32(stats.TotalCorrections),
		UniqueOriginals:  int32(stats.UniqueOriginals),
		ByAuthor:         toInt32Map(stats.ByAuthor),
		ByPattern:        toInt32Map(stats.ByPattern),
	}
	if stats.FirstAt != nil {
		out.FirstAt = stats.FirstAt.UTC().Format(time.RFC3339)
	}
	if stats.LastAt != nil {
		out.LastAt = stats.LastAt.UTC().Format(time.RFC3339)
	}
	return out, nil
}

// bboxFromWire lifts the flat [x1, y1, x2, y2] wire form back into point
// rows. Anything other than four numbers is passed through for the service
// to reject or ignore.
func bboxFromWire(flat []float64) [][]float64 {
	switch len(flat) {
	case 0:
		return nil
	case 4:
		return [][]float64{{flat[0], flat[1]}, {flat[2], flat[3]}}
	default:
		return [][]float64{flat}
	}
}

func toInt32Map(in map[string]int) map[string]int32 {
	if len(in) == 0 {
		return nil
	}
	out := make(map[string]int32, len(in))
	for k, v := range in {
		out[k] = int32(v)
	}
	return out
}
