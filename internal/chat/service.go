// Package chat is the in-memory messaging inbox. Sending a message to
// an online contact schedules one canned reply after a short random
// delay; pending replies are cancelled when the conversation view is
// torn down, so a timer never mutates closed state.
package chat

import (
	"math/rand"
	"sort"
	"strings"
	"sync"
	"time"

	uuid "github.com/satori/go.uuid"

	"myple/internal/catalog"
	"myple/internal/common"
)

type Chat struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	LastMessage string `json:"last_message"`
	Timestamp   string `json:"timestamp"`
	Online      bool   `json:"online"`
}

type Message struct {
	ID        string `json:"id"`
	Sender    string `json:"sender"`
	Content   string `json:"content"`
	Timestamp string `json:"timestamp"`
	IsOwn     bool   `json:"is_own"`
}

// Service owns the conversations. Unlike the board store it takes a
// lock: reply timers fire on their own goroutines.
type Service struct {
	mu       sync.Mutex
	chats    []Chat
	messages map[string][]Message
	replies  []string
	timers   map[string][]*time.Timer
	rng      *rand.Rand
	delay    func() time.Duration
	now      func() time.Time
	closed   bool
}

func NewService(spec catalog.ChatSpec, src rand.Source) *Service {
	s := &Service{
		messages: make(map[string][]Message),
		replies:  append([]string(nil), spec.Replies...),
		timers:   make(map[string][]*time.Timer),
		rng:      rand.New(src),
		now:      time.Now,
	}
	s.delay = func() time.Duration {
		return time.Duration(s.rng.Intn(2000)+1000) * time.Millisecond
	}
	for _, c := range spec.Contacts {
		s.chats = append(s.chats, Chat{
			ID:          c.ID,
			Name:        c.Name,
			LastMessage: c.LastMessage,
			Timestamp:   c.Timestamp,
			Online:      c.Online,
		})
		for _, m := range c.Messages {
			s.messages[c.ID] = append(s.messages[c.ID], Message{
				ID:        uuid.NewV4().String(),
				Sender:    m.Sender,
				Content:   m.Content,
				Timestamp: m.Timestamp,
				IsOwn:     m.Own,
			})
		}
	}
	return s
}

// Chats returns a snapshot of the conversation list.
func (s *Service) Chats() []Chat {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Chat(nil), s.chats...)
}

// Search filters conversations by contact name, case-insensitive.
func (s *Service) Search(query string) []Chat {
	query = strings.ToLower(strings.TrimSpace(query))
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Chat, 0, len(s.chats))
	for _, c := range s.chats {
		if query == "" || strings.Contains(strings.ToLower(c.Name), query) {
			out = append(out, c)
		}
	}
	return out
}

// Messages returns a snapshot of one conversation.
func (s *Service) Messages(chatID string) []Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Message(nil), s.messages[chatID]...)
}

// SendMessage appends the user's message, updates the conversation
// preview and, for online contacts, schedules one canned auto-reply
// after a 1-3 second delay.
func (s *Service) SendMessage(chatID, content string) (Message, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return Message{}, common.InvalidArgumentError(nil, "message is empty")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	chat := s.findChat(chatID)
	if chat == nil {
		return Message{}, common.NotFoundError(nil, "unknown conversation")
	}
	m := Message{
		ID:        uuid.NewV4().String(),
		Sender:    "You",
		Content:   content,
		Timestamp: s.clockTime(),
		IsOwn:     true,
	}
	s.messages[chatID] = append(s.messages[chatID], m)
	chat.LastMessage = content
	chat.Timestamp = "now"

	if chat.Online && !s.closed && len(s.replies) > 0 {
		var timer *time.Timer
		timer = time.AfterFunc(s.delay(), func() {
			s.deliverReply(chatID, timer)
		})
		s.timers[chatID] = append(s.timers[chatID], timer)
	}
	return m, nil
}

func (s *Service) deliverReply(chatID string, timer *time.Timer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.dropTimer(chatID, timer) {
		// Cancelled between firing and locking.
		return
	}
	chat := s.findChat(chatID)
	if chat == nil {
		return
	}
	reply := s.replies[s.rng.Intn(len(s.replies))]
	s.messages[chatID] = append(s.messages[chatID], Message{
		ID:        uuid.NewV4().String(),
		Sender:    chat.Name,
		Content:   reply,
		Timestamp: s.clockTime(),
		IsOwn:     false,
	})
	chat.LastMessage = reply
	chat.Timestamp = "now"
}

// CancelPending drops every undelivered reply for one conversation.
// Called when its view is closed.
func (s *Service) CancelPending(chatID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range s.timers[chatID] {
		t.Stop()
	}
	delete(s.timers, chatID)
}

// Close cancels every pending reply across all conversations.
func (s *Service) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	ids := make([]string, 0, len(s.timers))
	for id := range s.timers {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		for _, t := range s.timers[id] {
			t.Stop()
		}
		delete(s.timers, id)
	}
}

func (s *Service) findChat(chatID string) *Chat {
	for i := range s.chats {
		if s.chats[i].ID == chatID {
			return &s.chats[i]
		}
	}
	return nil
}

// dropTimer removes a fired timer from the pending set. It reports
// false when CancelPending or Close already removed it.
func (s *Service) dropTimer(chatID string, timer *time.Timer) bool {
	pending := s.timers[chatID]
	for i, t := range pending {
		if t == timer {
			s.timers[chatID] = append(pending[:i:i], pending[i+1:]...)
			return true
		}
	}
	return false
}

func (s *Service) clockTime() string {
	return s.now().Format("3:04 PM")
}
