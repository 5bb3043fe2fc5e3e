package service

import (
	"Clipstream/internal/api/dto"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func recvOne(t *testing.T, ch <-chan *dto.ChatMessage) *dto.ChatMessage {
	t.Helper()
	select {
	case msg := <-ch:
		return msg
	case <-time.After(time.Second):
		t.Fatal("expected a message but got none")
		return nil
	}
}

func assertNoMessage(t *testing.T, ch <-chan *dto.ChatMessage) {
	t.Helper()
	select {
	case msg := <-ch:
		t.Fatalf("expected no message but got %+v", msg)
	default:
	}
}

func TestChatHub_BroadcastReachesEveryClient(t *testing.T) {
	hub := NewChatHub()

	ch1 := hub.Register("conn-1")
	ch2 := hub.Register("conn-2")
	ch3 := hub.Register("conn-3")
	assert.Equal(t, 3, hub.Count())

	msg := &dto.ChatMessage{Type: "receiveMessage", SenderID: "alice", Content: "hello"}
	hub.Broadcast(msg)

	for _, ch := range []<-chan *dto.ChatMessage{ch1, ch2, ch3} {
		got := recvOne(t, ch)
		assert.Equal(t, "hello", got.Content)
		assert.Equal(t, "alice", got.SenderID)
		// 每个连接恰好收到一份
		assertNoMessage(t, ch)
	}
}

func TestChatHub_LateJoinerGetsNothing(t *testing.T) {
	hub := NewChatHub()

	early := hub.Register("early")
	hub.Broadcast(&dto.ChatMessage{Content: "before join"})

	late := hub.Register("late")

	recvOne(t, early)
	assertNoMessage(t, late)
}

func TestChatHub_UnregisterClosesChannel(t *testing.T) {
	hub := NewChatHub()

	ch := hub.Register("conn-1")
	hub.Unregister("conn-1")
	assert.Equal(t, 0, hub.Count())

	_, ok := <-ch
	assert.False(t, ok)

	// 注销后的广播不会送达
	hub.Broadcast(&dto.ChatMessage{Content: "after leave"})

	// 重复注销不会 panic
	hub.Unregister("conn-1")
}

func TestChatHub_PerSenderOrderPreserved(t *testing.T) {
	hub := NewChatHub()
	ch := hub.Register("conn-1")

	for _, content := range []string{"m1", "m2", "m3"} {
		hub.Broadcast(&dto.ChatMessage{SenderID: "alice", Content: content})
	}

	require.Equal(t, "m1", recvOne(t, ch).Content)
	require.Equal(t, "m2", recvOne(t, ch).Content)
	require.Equal(t, "m3", recvOne(t, ch).Content)
}

func TestChatHub_SlowClientDoesNotBlockBroadcast(t *testing.T) {
	hub := NewChatHub()
	slow := hub.Register("slow")

	done := make(chan struct{})
	go func() {
		// 缓冲满后广播对慢连接静默丢弃，发送端不会卡住
		for i := 0; i < chatSendBuffer+5; i++ {
			hub.Broadcast(&dto.ChatMessage{Content: "burst"})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("broadcast blocked on a slow client")
	}

	received := 0
	for {
		select {
		case <-slow:
			received++
			continue
		default:
		}
		break
	}
	assert.Equal(t, chatSendBuffer, received)
}
