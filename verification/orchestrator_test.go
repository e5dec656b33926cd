package verification_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/locey/BurnWin/verification"
	"github.com/locey/BurnWin/verification/mock_verification"
)

var now = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func fixedNow() time.Time { return now }

func openedAgo(d time.Duration) verification.Evidence {
	at := now.Add(-d)
	return verification.Evidence{HasOpenedTarget: true, OpenedAt: &at}
}

func discordTask() verification.Task {
	return verification.Task{
		ID:         "join-discord",
		CampaignID: "burn-1",
		Type:       verification.TaskDiscordJoin,
		Required:   true,
		Params:     verification.DiscordJoinParams{GuildID: "42", InviteURL: "https://discord.gg/x"},
	}
}

func user() verification.UserIdentity {
	return verification.UserIdentity{Address: "0xabc", DiscordUserID: "7"}
}

func TestVerifyTask_GateBlocksAdapter(t *testing.T) {
	tests := []struct {
		name     string
		evidence verification.Evidence
		wantMsg  string
	}{
		{name: "never opened", evidence: verification.Evidence{}, wantMsg: verification.MsgOpenLinkFirst},
		{name: "flag without timestamp", evidence: verification.Evidence{HasOpenedTarget: true}, wantMsg: verification.MsgOpenLinkFirst},
		{name: "dwell too short", evidence: openedAgo(500 * time.Millisecond), wantMsg: verification.MsgDwellTooShort},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			discord := mock_verification.NewMockDiscordVerifier(ctrl)
			discord.EXPECT().VerifyJoin(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

			o := verification.NewOrchestrator(verification.Adapters{Discord: discord}, verification.Options{
				MinDwell: verification.DefaultMinDwell,
				Now:      fixedNow,
			})
			res := o.VerifyTask(context.Background(), verification.Request{
				Task: discordTask(), User: user(), Evidence: tt.evidence,
			})

			assert.False(t, res.Success)
			assert.Equal(t, verification.FailureGate, res.Kind)
			assert.Equal(t, tt.wantMsg, res.Message)
			assert.Empty(t, res.Error)
		})
	}
}

func TestVerifyTask_DispatchesAfterGate(t *testing.T) {
	ctrl := gomock.NewController(t)
	discord := mock_verification.NewMockDiscordVerifier(ctrl)
	discord.EXPECT().
		VerifyJoin(gomock.Any(), verification.DiscordJoinParams{GuildID: "42", InviteURL: "https://discord.gg/x"}, user()).
		Return(verification.Verified{At: now}).
		Times(1)

	o := verification.NewOrchestrator(verification.Adapters{Discord: discord}, verification.Options{
		MinDwell: verification.DefaultMinDwell,
		Now:      fixedNow,
	})
	res := o.VerifyTask(context.Background(), verification.Request{
		Task: discordTask(), User: user(), Evidence: openedAgo(3 * time.Second),
	})

	require.True(t, res.Success)
	require.NotNil(t, res.Data)
	assert.True(t, res.Data.Verified)
	assert.Equal(t, now.UnixMilli(), res.Data.Timestamp)
}

func TestVerifyTask_UngatedTypeSkipsEvidence(t *testing.T) {
	ctrl := gomock.NewController(t)
	email := mock_verification.NewMockEmailVerifier(ctrl)
	email.EXPECT().VerifySubscribed(gomock.Any(), gomock.Any(), gomock.Any()).Return(verification.Verified{At: now})

	o := verification.NewOrchestrator(verification.Adapters{Email: email}, verification.Options{Now: fixedNow})
	res := o.VerifyTask(context.Background(), verification.Request{
		Task: verification.Task{ID: "email", Type: verification.TaskSubmitEmail, Params: verification.EmailSubmitParams{ListID: "l1"}},
		User: verification.UserIdentity{Address: "0xabc", Email: "a@b.c"},
	})
	assert.True(t, res.Success)
}

func TestVerifyTask_TimeoutOnHungAdapter(t *testing.T) {
	ctrl := gomock.NewController(t)
	release := make(chan struct{})
	t.Cleanup(func() { close(release) })

	discord := mock_verification.NewMockDiscordVerifier(ctrl)
	discord.EXPECT().VerifyJoin(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, verification.DiscordJoinParams, verification.UserIdentity) verification.Outcome {
			<-release
			return verification.Verified{}
		}).
		AnyTimes()

	timeout := 50 * time.Millisecond
	o := verification.NewOrchestrator(verification.Adapters{Discord: discord}, verification.Options{
		Timeout: timeout,
		Now:     time.Now,
	})

	at := time.Now().Add(-time.Minute)
	start := time.Now()
	res := o.VerifyTask(context.Background(), verification.Request{
		Task:     discordTask(),
		User:     user(),
		Evidence: verification.Evidence{HasOpenedTarget: true, OpenedAt: &at},
	})
	elapsed := time.Since(start)

	assert.False(t, res.Success)
	assert.Equal(t, verification.FailureTimeout, res.Kind)
	assert.Equal(t, verification.MsgRequestTimeout, res.Error)
	assert.Less(t, elapsed, timeout+500*time.Millisecond)
}

func TestVerifyTask_MockModeRequiresClick(t *testing.T) {
	o := verification.NewOrchestrator(verification.Adapters{}, verification.Options{
		MockMode:  true,
		MockDelay: 5 * time.Second,
		MinDwell:  verification.DefaultMinDwell,
	})

	start := time.Now()
	res := o.VerifyTask(context.Background(), verification.Request{Task: discordTask(), User: user()})

	assert.False(t, res.Success)
	assert.Equal(t, verification.MsgOpenLinkFirst, res.Message)
	assert.Less(t, time.Since(start), time.Second)
}

func TestVerifyTask_MockModeSimulatesSuccess(t *testing.T) {
	o := verification.NewOrchestrator(verification.Adapters{}, verification.Options{
		MockMode:  true,
		MockDelay: 10 * time.Millisecond,
		Now:       fixedNow,
	})
	res := o.VerifyTask(context.Background(), verification.Request{
		Task: discordTask(), User: user(), Evidence: openedAgo(time.Minute),
	})
	require.True(t, res.Success)
	assert.Equal(t, true, res.Data.Details["mock"])
}

func TestVerifyTask_MissingAdapterIsConfigurationFailure(t *testing.T) {
	o := verification.NewOrchestrator(verification.Adapters{}, verification.Options{Now: fixedNow})
	res := o.VerifyTask(context.Background(), verification.Request{
		Task: discordTask(), User: user(), Evidence: openedAgo(time.Minute),
	})
	assert.False(t, res.Success)
	assert.Equal(t, verification.FailureConfiguration, res.Kind)
	assert.Equal(t, "Discord verification not configured", res.Error)
}

func TestVerifyTask_AdapterPanicRecovered(t *testing.T) {
	ctrl := gomock.NewController(t)
	telegram := mock_verification.NewMockTelegramVerifier(ctrl)
	telegram.EXPECT().VerifyJoin(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, verification.TelegramJoinParams, verification.UserIdentity) verification.Outcome {
			panic("boom")
		})

	o := verification.NewOrchestrator(verification.Adapters{Telegram: telegram}, verification.Options{Now: fixedNow})
	res := o.VerifyTask(context.Background(), verification.Request{
		Task:     verification.Task{ID: "tg", Type: verification.TaskTelegramJoin, Params: verification.TelegramJoinParams{ChatID: "-1"}},
		User:     user(),
		Evidence: openedAgo(time.Minute),
	})
	assert.False(t, res.Success)
	assert.Equal(t, verification.FailureTransport, res.Kind)
}

func TestVerifyTask_TypeMismatch(t *testing.T) {
	o := verification.NewOrchestrator(verification.Adapters{}, verification.Options{Now: fixedNow})
	task := discordTask()
	task.Type = verification.TaskTelegramJoin
	res := o.VerifyTask(context.Background(), verification.Request{Task: task, User: user(), Evidence: openedAgo(time.Minute)})
	assert.Equal(t, verification.FailureInvalid, res.Kind)
}

func TestVerifyTask_YoutubeUnsupported(t *testing.T) {
	o := verification.NewOrchestrator(verification.Adapters{}, verification.Options{Now: fixedNow})
	res := o.VerifyTask(context.Background(), verification.Request{
		Task:     verification.Task{ID: "yt", Type: verification.TaskYoutubeSub, Params: verification.YoutubeSubParams{ChannelID: "c"}},
		User:     user(),
		Evidence: openedAgo(time.Minute),
	})
	assert.Equal(t, verification.FailureUnsupported, res.Kind)
}

type recordingObserver struct {
	mu    sync.Mutex
	calls []string
}

func (r *recordingObserver) ObserveAttempt(t verification.TaskType, outcome string, _ time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, string(t)+":"+outcome)
}

func TestVerifyTask_ObserverSeesEveryAttempt(t *testing.T) {
	obs := &recordingObserver{}
	o := verification.NewOrchestrator(verification.Adapters{}, verification.Options{Now: fixedNow, Observer: obs})

	o.VerifyTask(context.Background(), verification.Request{Task: discordTask(), User: user()})
	o.VerifyTask(context.Background(), verification.Request{Task: discordTask(), User: user(), Evidence: openedAgo(time.Minute)})

	assert.Equal(t, []string{"discord_join:gate", "discord_join:configuration"}, obs.calls)
}
