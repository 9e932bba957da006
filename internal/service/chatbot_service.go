package service

import (
	"context"
	"fmt"
	"strings"

	"classrecord-be/internal/dto"
	"classrecord-be/internal/repository/memory"
	"classrecord-be/pkg/assistant/dialog"
	"classrecord-be/pkg/store"

	"github.com/google/uuid"

	stdlog "log"
)

type IChatbotService interface {
	SendMessage(ctx context.Context, userId uuid.UUID, req *dto.SendMessageRequest) (*dto.SendMessageResponse, error)
}

// chatbotService glues the dialog engine to the record services. It is
// the engine's Actions implementation, so every chat-initiated mutation
// goes through the same service layer as the REST endpoints and emits
// the same DATA_CHANGED events.
type chatbotService struct {
	sessionRepo     *memory.SessionRepository
	noteService     INoteService
	calendarService ICalendarService
	classService    IClassService
	gradeService    IGradeService
	engine          *dialog.Engine
}

func NewChatbotService(
	sessionRepo *memory.SessionRepository,
	noteService INoteService,
	calendarService ICalendarService,
	classService IClassService,
	gradeService IGradeService,
	engineLog *stdlog.Logger,
) IChatbotService {
	s := &chatbotService{
		sessionRepo:     sessionRepo,
		noteService:     noteService,
		calendarService: calendarService,
		classService:    classService,
		gradeService:    gradeService,
	}
	s.engine = dialog.NewEngine(s, engineLog)
	return s
}

// SendMessage runs one conversation turn. The session lock serializes
// concurrent turns from the same teacher; turns for different teachers
// run in parallel.
func (s *chatbotService) SendMessage(ctx context.Context, userId uuid.UUID, req *dto.SendMessageRequest) (*dto.SendMessageResponse, error) {
	sess := s.sessionRepo.GetOrCreate(userId.String())

	sess.Lock()
	defer sess.Unlock()

	reply := s.engine.Turn(ctx, userId, sess, req.Message)
	return &dto.SendMessageResponse{Reply: reply}, nil
}

// dialog.Actions implementation

func (s *chatbotService) CreateNote(ctx context.Context, teacherId uuid.UUID, content string) error {
	_, err := s.noteService.Create(ctx, teacherId, &dto.CreateNoteRequest{Content: content})
	return err
}

func (s *chatbotService) ListNotes(ctx context.Context, teacherId uuid.UUID) ([]store.PendingNote, error) {
	notes, err := s.noteService.List(ctx, teacherId)
	if err != nil {
		return nil, err
	}

	out := make([]store.PendingNote, 0, len(notes))
	for _, n := range notes {
		out = append(out, store.PendingNote{Id: n.Id, Content: n.Content})
	}
	return out, nil
}

func (s *chatbotService) DeleteNote(ctx context.Context, teacherId, noteId uuid.UUID) (bool, error) {
	return s.noteService.Delete(ctx, teacherId, noteId)
}

func (s *chatbotService) DeleteAllNotes(ctx context.Context, teacherId uuid.UUID) (int64, error) {
	return s.noteService.DeleteAll(ctx, teacherId)
}

func (s *chatbotService) ListCalendarNotes(ctx context.Context, teacherId uuid.UUID) ([]store.PendingCalendarNote, error) {
	notes, err := s.calendarService.List(ctx, teacherId)
	if err != nil {
		return nil, err
	}

	out := make([]store.PendingCalendarNote, 0, len(notes))
	for _, n := range notes {
		out = append(out, store.PendingCalendarNote{
			Id:          n.Id,
			Date:        n.Date,
			Title:       n.Title,
			Description: n.Description,
			Type:        n.Type,
			ClassName:   n.ClassName,
		})
	}
	return out, nil
}

func (s *chatbotService) DeleteCalendarNote(ctx context.Context, teacherId, noteId uuid.UUID) (bool, error) {
	return s.calendarService.Delete(ctx, teacherId, noteId)
}

func (s *chatbotService) ListClasses(ctx context.Context, teacherId uuid.UUID) ([]string, error) {
	classes, err := s.classService.List(ctx, teacherId)
	if err != nil {
		return nil, err
	}

	out := make([]string, 0, len(classes))
	for _, c := range classes {
		label := c.Name
		if c.Subject != "" {
			label = fmt.Sprintf("%s (%s)", c.Name, c.Subject)
		}
		out = append(out, fmt.Sprintf("%s, %d students", label, c.StudentCount))
	}
	return out, nil
}

func (s *chatbotService) GradeSummary(ctx context.Context, teacherId uuid.UUID) (string, error) {
	summaries, err := s.gradeService.ClassSummaries(ctx, teacherId)
	if err != nil {
		return "", err
	}
	if len(summaries) == 0 {
		return "You haven't set up any classes yet.", nil
	}

	var b strings.Builder
	b.WriteString("Here's how your classes are doing:\n")
	graded := false
	for _, sum := range summaries {
		if sum.GradeCount == 0 {
			fmt.Fprintf(&b, "%s: no grades recorded yet\n", sum.ClassName)
			continue
		}
		graded = true
		fmt.Fprintf(&b, "%s: %.1f%% average over %d grades (%d students)\n",
			sum.ClassName, sum.AveragePct, sum.GradeCount, sum.StudentCount)
	}
	if !graded {
		return "No grades recorded yet. Record some on a student's page and ask me again.", nil
	}
	return strings.TrimRight(b.String(), "\n"), nil
}
