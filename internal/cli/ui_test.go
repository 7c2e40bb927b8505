package cli

import (
	"bytes"
	"io"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/briandowns/spinner"
	"github.com/golang/mock/gomock"

	"github.com/agbru/longdiv/internal/cli/mocks"
	"github.com/agbru/longdiv/internal/progress"
	"github.com/agbru/longdiv/internal/ui"
)

func TestMain(m *testing.M) {
	ui.SetCurrentTheme(ui.NoColorTheme)
	os.Exit(m.Run())
}

func TestRealSpinner(t *testing.T) {
	t.Parallel()
	s := spinner.New(spinner.CharSets[11], 100*time.Millisecond, spinner.WithWriter(io.Discard))
	rs := &realSpinner{s}

	rs.Start()
	rs.UpdateSuffix(" test")
	rs.Stop()
	if s.Suffix != " test" {
		t.Errorf("Suffix = %q, want %q", s.Suffix, " test")
	}
}

func TestDisplayProgress(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockS := mocks.NewMockSpinner(ctrl)
	gomock.InOrder(
		mockS.EXPECT().UpdateSuffix(gomock.Any()),
		mockS.EXPECT().Start(),
		mockS.EXPECT().Stop(),
	)
	mockS.EXPECT().UpdateSuffix(gomock.Any()).AnyTimes()

	originalNewSpinner := newSpinner
	defer func() { newSpinner = originalNewSpinner }()
	newSpinner = func(...spinner.Option) Spinner { return mockS }

	progressChan := make(chan progress.ProgressUpdate, 4)
	progressChan <- progress.ProgressUpdate{WorkerIndex: 0, Value: 1}
	progressChan <- progress.ProgressUpdate{WorkerIndex: 1, Value: 1}
	close(progressChan)

	var wg sync.WaitGroup
	wg.Add(1)
	var out bytes.Buffer
	DisplayProgress(&wg, progressChan, 2, &out)
	wg.Wait()

	if !strings.Contains(out.String(), "100.0%") {
		t.Errorf("final bar missing from output: %q", out.String())
	}
}

func TestDisplayProgress_ZeroStrategies(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockS := mocks.NewMockSpinner(ctrl) // no calls expected

	originalNewSpinner := newSpinner
	defer func() { newSpinner = originalNewSpinner }()
	newSpinner = func(...spinner.Option) Spinner { return mockS }

	progressChan := make(chan progress.ProgressUpdate, 1)
	progressChan <- progress.ProgressUpdate{Value: 0.5}
	close(progressChan)

	var wg sync.WaitGroup
	wg.Add(1)
	DisplayProgress(&wg, progressChan, 0, io.Discard)
	wg.Wait()
}
