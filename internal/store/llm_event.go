package store

import (
	"context"
	"fmt"
	"sort"

	"github.com/abhisek/mathcoach/ent"
	entllmrequest "github.com/abhisek/mathcoach/ent/llmrequest"
)

// eventRepo implements EventRepo backed by ent.
type eventRepo struct {
	client *ent.Client
}

func (r *eventRepo) AppendLLMRequest(ctx context.Context, data LLMRequestData) error {
	_, err := r.client.LLMRequest.Create().
		SetProvider(data.Provider).
		SetModel(data.Model).
		SetPurpose(data.Purpose).
		SetInputTokens(data.InputTokens).
		SetOutputTokens(data.OutputTokens).
		SetLatencyMs(data.LatencyMs).
		SetSuccess(data.Success).
		SetErrorMessage(data.ErrorMessage).
		SetRequestBody(data.RequestBody).
		SetResponseBody(data.ResponseBody).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save LLM request: %w", err)
	}
	return nil
}

func (r *eventRepo) RecentLLMRequests(ctx context.Context, limit int) ([]*LLMRequest, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}

	rows, err := r.client.LLMRequest.Query().
		Order(ent.Desc(entllmrequest.FieldCreatedAt), ent.Desc(entllmrequest.FieldID)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list LLM requests: %w", err)
	}

	out := make([]*LLMRequest, len(rows))
	for i, row := range rows {
		out[i] = mapLLMRequest(row)
	}
	return out, nil
}

func (r *eventRepo) GetLLMRequest(ctx context.Context, id int) (*LLMRequest, error) {
	row, err := r.client.LLMRequest.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get LLM request: %w", err)
	}
	return mapLLMRequest(row), nil
}

func (r *eventRepo) UsageByPurpose(ctx context.Context) ([]UsageStat, error) {
	return r.aggregate(ctx, func(row *ent.LLMRequest) string { return row.Purpose })
}

func (r *eventRepo) UsageByModel(ctx context.Context) ([]UsageStat, error) {
	return r.aggregate(ctx, func(row *ent.LLMRequest) string { return row.Model })
}

// aggregate folds all audit rows into per-key stats. The audit table is
// small (one row per backend call on a single deployment), so the fold
// happens in Go rather than SQL.
func (r *eventRepo) aggregate(ctx context.Context, keyOf func(*ent.LLMRequest) string) ([]UsageStat, error) {
	rows, err := r.client.LLMRequest.Query().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query LLM requests: %w", err)
	}

	byKey := make(map[string]*UsageStat)
	for _, row := range rows {
		key := keyOf(row)
		stat, ok := byKey[key]
		if !ok {
			stat = &UsageStat{Key: key}
			byKey[key] = stat
		}
		stat.Requests++
		if !row.Success {
			stat.Failures++
		}
		stat.InputTokens += row.InputTokens
		stat.OutputTokens += row.OutputTokens
	}

	out := make([]UsageStat, 0, len(byKey))
	for _, stat := range byKey {
		out = append(out, *stat)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out, nil
}

func mapLLMRequest(row *ent.LLMRequest) *LLMRequest {
	return &LLMRequest{
		ID:        row.ID,
		CreatedAt: row.CreatedAt,
		LLMRequestData: LLMRequestData{
			Provider:     row.Provider,
			Model:        row.Model,
			Purpose:      row.Purpose,
			InputTokens:  row.InputTokens,
			OutputTokens: row.OutputTokens,
			LatencyMs:    row.LatencyMs,
			Success:      row.Success,
			ErrorMessage: row.ErrorMessage,
			RequestBody:  row.RequestBody,
			ResponseBody: row.ResponseBody,
		},
	}
}
