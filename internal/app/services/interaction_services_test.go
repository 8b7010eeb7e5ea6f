package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"github.com/yigit/campushub/internal/app/models"
	"github.com/yigit/campushub/internal/app/models/dto"
	"github.com/yigit/campushub/internal/app/renderers"
	"github.com/yigit/campushub/internal/pkg/apperrors"
)

func price(v float64) *float64 { return &v }

func TestCreateListing(t *testing.T) {
	st, _ := newAppState(t)
	svc := NewMarketplaceService(st, zerolog.Nop())

	item, err := svc.CreateListing(context.Background(), &dto.CreateListingRequest{
		Title:       " Desk Lamp ",
		Description: "LED lamp",
		Price:       price(15),
		Condition:   "Good",
		Category:    "Furniture",
		Location:    "North Campus",
		Tags:        "lamp, desk , ,study",
	})
	require.NoError(t, err)

	want := &models.MarketplaceItem{
		ID:          fmt.Sprintf("item%d", fixedNow.UnixMilli()),
		Title:       "Desk Lamp",
		Description: "LED lamp",
		Price:       15,
		Condition:   models.ConditionGood,
		Category:    "Furniture",
		SellerID:    "user1",
		SellerName:  "Alex Johnson",
		Location:    "North Campus",
		Tags:        []string{"lamp", "desk", "study"},
		PostedDate:  "2024-01-20",
	}
	require.Empty(t, cmp.Diff(want, item))

	snap, err := st.Snapshot()
	require.NoError(t, err)
	require.Len(t, snap.MarketplaceItems, 7)
	require.Equal(t, item.ID, snap.MarketplaceItems[6].ID)
}

func TestCreateListingValidation(t *testing.T) {
	valid := func() *dto.CreateListingRequest {
		return &dto.CreateListingRequest{
			Title: "Bike", Description: "Fast", Price: price(0), Condition: "Fair",
			Category: "Sports", Location: "Campus",
		}
	}
	tests := []struct {
		name   string
		mutate func(r *dto.CreateListingRequest)
		field  string
	}{
		{"missing title", func(r *dto.CreateListingRequest) { r.Title = "  " }, "title"},
		{"missing price", func(r *dto.CreateListingRequest) { r.Price = nil }, "price"},
		{"negative price", func(r *dto.CreateListingRequest) { r.Price = price(-1) }, "price"},
		{"unknown condition", func(r *dto.CreateListingRequest) { r.Condition = "Broken" }, "condition"},
		{"unknown category", func(r *dto.CreateListingRequest) { r.Category = "Cars" }, "category"},
		{"missing location", func(r *dto.CreateListingRequest) { r.Location = "" }, "location"},
	}

	st, _ := newAppState(t)
	svc := NewMarketplaceService(st, zerolog.Nop())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid()
			tt.mutate(req)
			_, err := svc.CreateListing(context.Background(), req)
			require.ErrorIs(t, err, apperrors.ErrValidationFailed)

			var ce *apperrors.CustomError
			require.True(t, errors.As(err, &ce))
			require.Equal(t, tt.field, ce.Details["field"])
		})
	}

	_, err := svc.CreateListing(context.Background(), valid())
	require.NoError(t, err, "a free item is a valid listing")

	snap, err := st.Snapshot()
	require.NoError(t, err)
	require.Len(t, snap.MarketplaceItems, 7)
}

func TestAskQuestionAndAnswer(t *testing.T) {
	ctx := context.Background()
	st, _ := newAppState(t)
	svc := NewQnAService(st, zerolog.Nop())

	post, err := svc.AskQuestion(ctx, &dto.AskQuestionRequest{Title: "Best study spots?", Content: "Quiet places", Tags: "campus,study"})
	require.NoError(t, err)
	require.Equal(t, []string{"campus", "study"}, post.Tags)
	require.NotNil(t, post.Answers)
	require.Zero(t, post.AnswerCount)

	answer, err := svc.PostAnswer(ctx, post.ID, &dto.PostAnswerRequest{Content: "Library 3rd floor"})
	require.NoError(t, err)
	require.Equal(t, "user1", answer.UserID)

	snap, err := st.Snapshot()
	require.NoError(t, err)
	got := snap.QnaPosts[snap.QnaPosts.Index(post.ID)]
	require.Equal(t, 1, got.AnswerCount)
	require.Equal(t, answer.ID, got.Answers[0].ID)

	_, err = svc.PostAnswer(ctx, "q999", &dto.PostAnswerRequest{Content: "hello"})
	require.ErrorIs(t, err, apperrors.ErrResourceNotFound)

	_, err = svc.PostAnswer(ctx, "q1", &dto.PostAnswerRequest{Content: " "})
	require.ErrorIs(t, err, apperrors.ErrValidationFailed)

	_, err = svc.AskQuestion(ctx, &dto.AskQuestionRequest{Title: "", Content: "x"})
	require.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestBlockAndUnblock(t *testing.T) {
	ctx := context.Background()
	st, _ := newAppState(t)
	svc := NewModerationService(st, zerolog.Nop())

	require.NoError(t, svc.Block(ctx, "user3"))
	require.NoError(t, svc.Block(ctx, "user3"))
	require.True(t, st.IsBlocked("user3"))

	snap, err := st.Snapshot()
	require.NoError(t, err)
	require.Equal(t, models.BlockedUsers{"user3"}, snap.BlockedUsers)

	require.ErrorIs(t, svc.Block(ctx, "user1"), apperrors.ErrBadRequest)
	require.ErrorIs(t, svc.Block(ctx, "ghost"), apperrors.ErrResourceNotFound)
	require.ErrorIs(t, svc.Block(ctx, ""), apperrors.ErrValidationFailed)

	require.NoError(t, svc.Unblock(ctx, "user9"))
	require.NoError(t, svc.Unblock(ctx, "user3"))
	require.False(t, st.IsBlocked("user3"))
	require.ErrorIs(t, svc.Unblock(ctx, "  "), apperrors.ErrValidationFailed)
}

func TestUnblockLogsOnlyRealRemovals(t *testing.T) {
	ctx := context.Background()
	st, _ := newAppState(t)

	var buf bytes.Buffer
	svc := NewModerationService(st, zerolog.New(&buf).Level(zerolog.InfoLevel))

	require.NoError(t, svc.Unblock(ctx, "user9"))
	require.NotContains(t, buf.String(), "User unblocked")

	require.NoError(t, svc.Block(ctx, "user3"))
	buf.Reset()
	require.NoError(t, svc.Unblock(ctx, "user3"))
	require.Contains(t, buf.String(), "User unblocked")
	require.Contains(t, buf.String(), `"userID":"user3"`)
}

func TestSubmitReport(t *testing.T) {
	st, _ := newAppState(t)
	svc := NewModerationService(st, zerolog.Nop())

	resp, err := svc.SubmitReport(context.Background(), &dto.ReportRequest{Type: "spam", Description: "ads in chat"})
	require.NoError(t, err)
	require.NotEmpty(t, resp.ReportID)
	require.Equal(t, ReportConfirmation, resp.Message)

	_, err = svc.SubmitReport(context.Background(), &dto.ReportRequest{Type: "rude", Description: "x"})
	require.ErrorIs(t, err, apperrors.ErrValidationFailed)

	_, err = svc.SubmitReport(context.Background(), &dto.ReportRequest{Type: "user", Description: ""})
	require.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestNavigateControlsSimulator(t *testing.T) {
	ctx := context.Background()
	st, _ := newAppState(t)
	sim := &fakeSimulator{}
	svc := NewNavigationService(st, sim, zerolog.Nop())
	require.Equal(t, models.PageDashboard, svc.Current())

	view, err := svc.Navigate(ctx, "chat", renderers.Options{})
	require.NoError(t, err)
	require.Equal(t, "chat", view.Page)
	require.Equal(t, "#chat", view.Fragment)
	require.True(t, sim.active)
	require.Equal(t, models.PageChat, svc.Current())

	view, err = svc.Navigate(ctx, "marketplace", renderers.Options{})
	require.NoError(t, err)
	require.Equal(t, "marketplace", view.Page)
	require.False(t, sim.active)

	view, err = svc.Navigate(ctx, "settings", renderers.Options{})
	require.NoError(t, err)
	require.Equal(t, "dashboard", view.Page)
	require.Equal(t, models.PageDashboard, svc.Current())
	require.Equal(t, 1, sim.starts)
	require.Equal(t, 2, sim.stops)
}

func TestExport(t *testing.T) {
	ctx := context.Background()
	st, _ := newAppState(t)
	require.NoError(t, st.Block(ctx, "user9"))
	svc := NewDataService(st, nil, zerolog.Nop())

	data, err := svc.Export(ctx)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(string(data), "{\n  \"user\": {"))

	var doc dto.ExportDocument
	require.NoError(t, json.Unmarshal(data, &doc))

	snap, err := st.Snapshot()
	require.NoError(t, err)
	want := dto.ExportDocument{
		User:             snap.CurrentUser,
		ChatMessages:     snap.ChatMessages,
		MarketplaceItems: snap.MarketplaceItems,
		QnaPosts:         snap.QnaPosts,
		Achievements:     snap.Achievements,
		BlockedUsers:     models.BlockedUsers{"user9"},
	}
	require.Empty(t, cmp.Diff(want, doc))

	var keys map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &keys))
	require.Len(t, keys, 6)
}

func TestClearAll(t *testing.T) {
	ctx := context.Background()
	st, store := newAppState(t)
	sim := &fakeSimulator{}
	nav := NewNavigationService(st, sim, zerolog.Nop())
	svc := NewDataService(st, nav, zerolog.Nop())

	_, err := nav.Navigate(ctx, "chat", renderers.Options{})
	require.NoError(t, err)
	require.NoError(t, st.Block(ctx, "user2"))
	chat := NewChatService(st, nil, nil, zerolog.Nop())
	_, err = chat.SendMessage(ctx, "temporary")
	require.NoError(t, err)

	_, err = svc.ClearAll(ctx, false)
	require.ErrorIs(t, err, apperrors.ErrConfirmationRequired)
	require.True(t, st.IsBlocked("user2"))

	view, err := svc.ClearAll(ctx, true)
	require.NoError(t, err)
	require.Equal(t, "dashboard", view.Page)
	require.False(t, sim.active)

	snap, err := st.Snapshot()
	require.NoError(t, err)
	require.Len(t, snap.ChatMessages, 10)
	require.Empty(t, snap.BlockedUsers)
	require.Equal(t, len(models.TrackedKeys), store.Len())
}

func TestRefreshKeepsSimulatorState(t *testing.T) {
	ctx := context.Background()
	st, _ := newAppState(t)
	sim := &fakeSimulator{}
	nav := NewNavigationService(st, sim, zerolog.Nop())

	_, err := nav.Navigate(ctx, "chat", renderers.Options{})
	require.NoError(t, err)
	chat := NewChatService(st, nil, nil, zerolog.Nop())
	_, err = chat.SendMessage(ctx, "refresh me")
	require.NoError(t, err)

	view, err := nav.Refresh(ctx)
	require.NoError(t, err)
	require.Equal(t, "chat", view.Page)
	msgs := view.View.(dto.ChatView).Messages
	require.Equal(t, "refresh me", msgs[len(msgs)-1].Text)
	require.Equal(t, 1, sim.starts)
	require.Equal(t, 0, sim.stops)
}
