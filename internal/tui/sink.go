// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-quote-keeper/internal/service"
	"github.com/MKhiriev/go-quote-keeper/models"
)

// sender is the part of *tea.Program the sink needs.
type sender interface {
	Send(msg tea.Msg)
}

// Sink implements [service.Sink] on top of a bubbletea program. Messages
// are queued and forwarded by a single goroutine while a program is attached,
// so the program sees them in emission order. Messages emitted while no
// program is attached wait in the queue.
type Sink struct {
	mu      sync.Mutex
	program sender
	queue   []tea.Msg
	wake    chan struct{}
	done    chan struct{}
	stopped chan struct{}
}

var _ service.Sink = (*Sink)(nil)

func NewSink() *Sink {
	return &Sink{wake: make(chan struct{}, 1)}
}

// attach starts forwarding the queue, backlog first, to p.
func (s *Sink) attach(p sender) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.program != nil {
		return
	}
	s.program = p
	s.done = make(chan struct{})
	s.stopped = make(chan struct{})
	go s.forward(p, s.done, s.stopped)
	s.signal()
}

// detach stops forwarding; undelivered messages stay queued.
func (s *Sink) detach() {
	s.mu.Lock()
	if s.program == nil {
		s.mu.Unlock()
		return
	}
	s.program = nil
	done, stopped := s.done, s.stopped
	s.mu.Unlock()

	close(done)
	<-stopped
}

func (s *Sink) forward(p sender, done, stopped chan struct{}) {
	defer close(stopped)
	for {
		select {
		case <-done:
			return
		case <-s.wake:
		}

		for {
			s.mu.Lock()
			if len(s.queue) == 0 || s.program != p {
				s.mu.Unlock()
				break
			}
			msg := s.queue[0]
			s.queue = s.queue[1:]
			s.mu.Unlock()

			p.Send(msg)
		}
	}
}

// signal wakes the forwarder; callers hold s.mu.
func (s *Sink) signal() {
	select {
	case s.wake <- struct{}{}:
	default:
	}
}

func (s *Sink) send(msg tea.Msg) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.queue = append(s.queue, msg)
	if s.program != nil {
		s.signal()
	}
}

// pending returns a copy of the undelivered messages.
func (s *Sink) pending() []tea.Msg {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]tea.Msg(nil), s.queue...)
}

func (s *Sink) ShowQuote(quote models.Quote, restored bool) {
	s.send(showQuoteMsg{quote: quote, restored: restored})
}

func (s *Sink) ShowList(filter string, quotes []models.Quote) {
	s.send(showListMsg{filter: filter, quotes: models.CloneQuotes(quotes)})
}

func (s *Sink) ShowEmpty(filter string) {
	s.send(showEmptyMsg{filter: filter})
}

func (s *Sink) SetCategories(categories []string, selected string) {
	s.send(categoriesMsg{categories: append([]string(nil), categories...), selected: selected})
}

func (s *Sink) Notify(notification models.Notification) {
	s.send(notifyMsg{notification: notification})
}
