package widget_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/locey/BurnWin/verification"
	"github.com/locey/BurnWin/widget"
	"github.com/locey/BurnWin/widget/mock_widget"
)

var discordTask = verification.Task{
	ID:         "join-discord",
	CampaignID: "c1",
	Type:       verification.TaskDiscordJoin,
	Required:   true,
	Params:     verification.DiscordJoinParams{GuildID: "g1", InviteURL: "https://discord.gg/burnwin"},
}

var user = verification.UserIdentity{Address: "0xabc", DiscordUserID: "42"}

func TestWidget_VerifyBeforeOpenIsRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	v := mock_widget.NewMockVerifier(ctrl)
	v.EXPECT().Verify(gomock.Any(), gomock.Any()).Times(0)

	w := widget.New(discordTask, user, v)
	assert.False(t, w.CanVerify())
	_, err := w.Verify(context.Background())
	assert.ErrorIs(t, err, widget.ErrTargetNotOpened)
	assert.Equal(t, widget.StatusWaiting, w.State().Status)
}

func TestWidget_HappyPath(t *testing.T) {
	ctrl := gomock.NewController(t)
	v := mock_widget.NewMockVerifier(ctrl)

	w := widget.New(discordTask, user, v)
	var seen []widget.Status
	w.OnTransition(func(_, to widget.State) { seen = append(seen, to.Status) })

	url, err := w.OpenTarget()
	require.NoError(t, err)
	assert.Equal(t, "https://discord.gg/burnwin", url)
	assert.True(t, w.CanVerify())

	v.EXPECT().Verify(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, req widget.VerifyRequest) (verification.Result, error) {
		assert.Equal(t, "c1", req.CampaignID)
		assert.Equal(t, "join-discord", req.TaskID)
		assert.True(t, req.Evidence.HasOpenedTarget)
		assert.NotNil(t, req.Evidence.OpenedAt)
		assert.Equal(t, widget.StatusVerifying, seen[len(seen)-1])
		return verification.Result{Success: true, Message: "Discord membership verified"}, nil
	})

	res, err := w.Verify(context.Background())
	require.NoError(t, err)
	assert.True(t, res.Success)

	st := w.State()
	assert.Equal(t, widget.StatusSuccess, st.Status)
	assert.Equal(t, "Discord membership verified", st.LastMessage)
	assert.Equal(t, 1, st.Attempts)
	assert.False(t, w.CanVerify())
	assert.Equal(t, []widget.Status{widget.StatusActionTaken, widget.StatusVerifying, widget.StatusSuccess}, seen)

	_, err = w.Verify(context.Background())
	assert.ErrorIs(t, err, widget.ErrAlreadyVerified)
	_, err = w.OpenTarget()
	assert.ErrorIs(t, err, widget.ErrAlreadyVerified)
}

func TestWidget_FailedIsRecoverable(t *testing.T) {
	ctrl := gomock.NewController(t)
	v := mock_widget.NewMockVerifier(ctrl)
	w := widget.New(discordTask, user, v)
	_, err := w.OpenTarget()
	require.NoError(t, err)
	opened := *w.State().OpenedAt

	gomock.InOrder(
		v.EXPECT().Verify(gomock.Any(), gomock.Any()).
			Return(verification.Result{Error: "User not found in server", Kind: verification.FailureNotFound}, nil),
		v.EXPECT().Verify(gomock.Any(), gomock.Any()).
			Return(verification.Result{Success: true}, nil),
	)

	res, err := w.Verify(context.Background())
	require.NoError(t, err)
	assert.False(t, res.Success)
	assert.Equal(t, widget.StatusFailed, w.State().Status)
	assert.Equal(t, "User not found in server", w.State().LastMessage)
	assert.True(t, w.CanVerify())

	// reopening keeps the first open time
	_, err = w.OpenTarget()
	require.NoError(t, err)
	assert.Equal(t, widget.StatusActionTaken, w.State().Status)
	assert.Equal(t, opened, *w.State().OpenedAt)

	res, err = w.Verify(context.Background())
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, 2, w.State().Attempts)
}

func TestWidget_BackendErrorFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	v := mock_widget.NewMockVerifier(ctrl)
	v.EXPECT().Verify(gomock.Any(), gomock.Any()).Return(verification.Result{}, errors.New("connection refused"))

	w := widget.New(discordTask, user, v)
	_, err := w.OpenTarget()
	require.NoError(t, err)

	res, err := w.Verify(context.Background())
	require.NoError(t, err)
	assert.False(t, res.Success)
	assert.Equal(t, verification.FailureTransport, res.Kind)
	assert.Equal(t, widget.StatusFailed, w.State().Status)
	assert.Equal(t, "connection refused", w.State().LastMessage)
}

func TestWidget_RejectsConcurrentVerify(t *testing.T) {
	ctrl := gomock.NewController(t)
	v := mock_widget.NewMockVerifier(ctrl)
	w := widget.New(discordTask, user, v)
	_, err := w.OpenTarget()
	require.NoError(t, err)

	release := make(chan struct{})
	entered := make(chan struct{})
	v.EXPECT().Verify(gomock.Any(), gomock.Any()).DoAndReturn(func(context.Context, widget.VerifyRequest) (verification.Result, error) {
		close(entered)
		<-release
		return verification.Result{Success: true}, nil
	})

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, _ = w.Verify(context.Background())
	}()
	<-entered

	assert.False(t, w.CanVerify())
	_, err = w.Verify(context.Background())
	assert.ErrorIs(t, err, widget.ErrVerifying)
	_, err = w.OpenTarget()
	assert.ErrorIs(t, err, widget.ErrVerifying)

	close(release)
	<-done
	assert.Equal(t, widget.StatusSuccess, w.State().Status)
}
