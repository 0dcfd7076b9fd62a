// Package social tracks follow relationships for the profile view.
// Following someone moves the status to pending; approval is simulated
// after a short random delay and can be cancelled when the view goes
// away.
package social

import (
	"math/rand"
	"sync"
	"time"
)

type Status string

const (
	StatusNone     Status = "none"
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
)

type FollowRequest struct {
	Username string `json:"username"`
	Avatar   string `json:"avatar"`
}

type Service struct {
	mu          sync.Mutex
	statuses    map[string]Status
	incoming    []FollowRequest
	connections []FollowRequest
	timers      map[string]*time.Timer
	delay       func() time.Duration
	closed      bool
}

func NewService(src rand.Source) *Service {
	rng := rand.New(src)
	return &Service{
		statuses: make(map[string]Status),
		timers:   make(map[string]*time.Timer),
		delay: func() time.Duration {
			return time.Duration(rng.Intn(2000)+1000) * time.Millisecond
		},
	}
}

// Status returns the follow state for a profile, StatusNone when the
// profile was never followed.
func (s *Service) Status(username string) Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	if st, ok := s.statuses[username]; ok {
		return st
	}
	return StatusNone
}

// Follow moves an unfollowed profile to pending and schedules the
// simulated approval. Pending and approved profiles are left alone.
func (s *Service) Follow(username string, avatar string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed || s.statuses[username] == StatusPending || s.statuses[username] == StatusApproved {
		return
	}
	s.statuses[username] = StatusPending
	s.timers[username] = time.AfterFunc(s.delay(), func() {
		s.approve(username, avatar)
	})
}

func (s *Service) approve(username, avatar string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, pending := s.timers[username]; !pending {
		return
	}
	delete(s.timers, username)
	s.statuses[username] = StatusApproved
	s.connections = append(s.connections, FollowRequest{Username: username, Avatar: avatar})
}

// ReceiveRequest records an incoming follow request from another
// profile.
func (s *Service) ReceiveRequest(username, avatar string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.incoming {
		if r.Username == username {
			return
		}
	}
	s.incoming = append(s.incoming, FollowRequest{Username: username, Avatar: avatar})
}

// Incoming returns the pending requests addressed to the user.
func (s *Service) Incoming() []FollowRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]FollowRequest(nil), s.incoming...)
}

// Accept moves an incoming request into the connections list.
func (s *Service) Accept(username string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, r := range s.incoming {
		if r.Username == username {
			s.incoming = append(s.incoming[:i:i], s.incoming[i+1:]...)
			s.connections = append(s.connections, r)
			s.statuses[username] = StatusApproved
			return
		}
	}
}

// Reject drops an incoming request and resets the profile's status.
func (s *Service) Reject(username string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, r := range s.incoming {
		if r.Username == username {
			s.incoming = append(s.incoming[:i:i], s.incoming[i+1:]...)
			s.statuses[username] = StatusNone
			return
		}
	}
}

// Connections returns the approved follows.
func (s *Service) Connections() []FollowRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]FollowRequest(nil), s.connections...)
}

// Close cancels every pending approval; statuses stay pending and will
// never flip once the service is closed.
func (s *Service) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	for name, t := range s.timers {
		t.Stop()
		delete(s.timers, name)
	}
}
