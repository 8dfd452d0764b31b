package services

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"gorm.io/gorm"

	"github.com/linguaclass/b1dialog-backend/internal/repos"
	"github.com/linguaclass/b1dialog-backend/internal/types"
)

func newTestSessionService(t *testing.T) (SessionService, *gorm.DB) {
	t.Helper()
	gdb := newTestDB(t)
	log := newTestLogger(t)
	svc := NewSessionService(gdb, log, repos.NewSessionRepo(gdb, log), repos.NewDialogResultRepo(gdb, log))
	return svc, gdb
}

func TestRecordSessionRoundtrip(t *testing.T) {
	svc, _ := newTestSessionService(t)
	ctx := context.Background()

	score := 7.0
	max := 10.0
	inputs := []RecordSessionInput{
		{ClassCode: "C1", ParticipantID: "P1", LessonID: "L1", SessionType: "dialog", Score: &score, MaxScore: &max},
		{ClassCode: "C1", ParticipantID: "P2", LessonID: "L2", SessionType: "written"},
		{ClassCode: "C2", ParticipantID: "P1", LessonID: "L1", SessionType: "dialog"},
	}
	for i, in := range inputs {
		if err := svc.RecordSession(ctx, nil, in); err != nil {
			t.Fatalf("RecordSession %d: %v", i, err)
		}
	}

	rows, err := svc.ListSessions(ctx, nil, "C1", "")
	if err != nil {
		t.Fatalf("ListSessions: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("rows for C1: want=2 got=%d", len(rows))
	}
	// Insertion order is preserved (created_at ascending).
	if rows[0].ParticipantID != "P1" || rows[1].ParticipantID != "P2" {
		t.Fatalf("row order: got %q then %q", rows[0].ParticipantID, rows[1].ParticipantID)
	}
	if rows[0].Score == nil || *rows[0].Score != 7.0 {
		t.Fatalf("score not persisted: %v", rows[0].Score)
	}

	filtered, err := svc.ListSessions(ctx, nil, "C1", "P2")
	if err != nil {
		t.Fatalf("ListSessions filtered: %v", err)
	}
	if len(filtered) != 1 || filtered[0].ParticipantID != "P2" {
		t.Fatalf("participant filter: got %d rows", len(filtered))
	}
}

func TestRecordSessionMissingFields(t *testing.T) {
	svc, gdb := newTestSessionService(t)

	err := svc.RecordSession(context.Background(), nil, RecordSessionInput{
		ClassCode:     "C1",
		ParticipantID: "P1",
	})
	var validationErr *ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("RecordSession: want ValidationError, got %v", err)
	}

	var count int64
	if err := gdb.Model(&types.Session{}).Count(&count).Error; err != nil {
		t.Fatalf("count sessions: %v", err)
	}
	if count != 0 {
		t.Fatalf("session rows after rejected insert: want=0 got=%d", count)
	}
}

func TestListSessionsRequiresClass(t *testing.T) {
	svc, _ := newTestSessionService(t)

	_, err := svc.ListSessions(context.Background(), nil, "", "")
	var validationErr *ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("ListSessions: want ValidationError, got %v", err)
	}
}

func TestRecordDialogResultRoundtrip(t *testing.T) {
	svc, _ := newTestSessionService(t)
	ctx := context.Background()

	score := 9.0
	max := 12.0
	err := svc.RecordDialogResult(ctx, nil, RecordDialogResultInput{
		ClassCode:     "C1",
		ParticipantID: "P1",
		LessonID:      "L1",
		Score:         &score,
		MaxScore:      &max,
		Level:         "B1",
		ResultJSON:    json.RawMessage(`{"tasks":[{"id":1,"ok":true}]}`),
	})
	if err != nil {
		t.Fatalf("RecordDialogResult: %v", err)
	}

	rows, err := svc.ListDialogResults(ctx, nil, "C1")
	if err != nil {
		t.Fatalf("ListDialogResults: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("rows: want=1 got=%d", len(rows))
	}
	if rows[0].Level != "B1" || rows[0].Score != 9.0 {
		t.Fatalf("row fields: level=%q score=%v", rows[0].Level, rows[0].Score)
	}
	if len(rows[0].ResultJSON) == 0 {
		t.Fatalf("result_json not persisted")
	}
}

func TestRecordDialogResultMissingScore(t *testing.T) {
	svc, _ := newTestSessionService(t)

	max := 10.0
	err := svc.RecordDialogResult(context.Background(), nil, RecordDialogResultInput{
		ClassCode:     "C1",
		ParticipantID: "P1",
		LessonID:      "L1",
		MaxScore:      &max,
		Level:         "B1",
	})
	var validationErr *ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("RecordDialogResult: want ValidationError, got %v", err)
	}
}

func TestListDialogResultsEmptyClassIsEmptySlice(t *testing.T) {
	svc, _ := newTestSessionService(t)

	rows, err := svc.ListDialogResults(context.Background(), nil, "C9")
	if err != nil {
		t.Fatalf("ListDialogResults: %v", err)
	}
	if rows == nil || len(rows) != 0 {
		t.Fatalf("rows for empty class: want empty slice, got %v", rows)
	}
}
