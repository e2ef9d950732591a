package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/bnema/kondo-sampler/internal/domain"
	"github.com/bnema/kondo-sampler/internal/ports"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// progressUpdates caps how many redraws a run can request.
const progressUpdates = 100

// progressSink forwards transitions and reports the iteration count every
// total/progressUpdates iterations and on the last one.
type progressSink struct {
	next   ports.TrajectorySink
	total  int
	report func(iteration int)
}

var _ ports.TrajectorySink = (*progressSink)(nil)

func (s *progressSink) Record(ctx context.Context, transition domain.Transition) error {
	if err := s.next.Record(ctx, transition); err != nil {
		return err
	}
	if s.report == nil {
		return nil
	}

	every := max(1, s.total/progressUpdates)
	if transition.Iteration%every == 0 || transition.Iteration == s.total {
		s.report(transition.Iteration)
	}

	return nil
}

type samplingProgressMsg struct {
	iteration int
}

type samplingDoneMsg struct {
	err error
}

type samplingProgressModel struct {
	spinner   spinner.Model
	counter   lipgloss.Style
	total     int
	iteration int
	sample    tea.Cmd
	err       error
	done      bool
}

func newSamplingProgressModel(total int, sample tea.Cmd) samplingProgressModel {
	s := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("69"))),
	)

	return samplingProgressModel{
		spinner: s,
		counter: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		total:   total,
		sample:  sample,
	}
}

func (m samplingProgressModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.sample)
}

func (m samplingProgressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case samplingProgressMsg:
		m.iteration = msg.iteration
		return m, nil
	case samplingDoneMsg:
		m.done = true
		m.err = msg.err
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m samplingProgressModel) View() string {
	if m.done {
		return ""
	}

	return fmt.Sprintf("%s Sampling iteration %s", m.spinner.View(), m.counter.Render(fmt.Sprintf("%d/%d", m.iteration, m.total)))
}

// runSamplingProgress draws the progress line on output while sample runs.
// sample receives the callback to hand to a progressSink.
func runSamplingProgress(ctx context.Context, output io.Writer, total int, sample func(context.Context, func(int)) error) error {
	var p *tea.Program
	report := func(iteration int) {
		p.Send(samplingProgressMsg{iteration: iteration})
	}
	sampleCmd := func() tea.Msg {
		return samplingDoneMsg{err: sample(ctx, report)}
	}

	p = tea.NewProgram(
		newSamplingProgressModel(total, sampleCmd),
		tea.WithInput(nil),
		tea.WithOutput(output),
		tea.WithContext(ctx),
	)

	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(samplingProgressModel)
	if !ok {
		return fmt.Errorf("unexpected final progress model type %T", finalModel)
	}

	return result.err
}
