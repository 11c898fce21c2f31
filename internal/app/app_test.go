package app_test

import (
	"bytes"
	"context"
	"errors"
	"iter"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/svgmake/internal/adapters/fs"
	"go.trai.ch/svgmake/internal/adapters/shell"
	"go.trai.ch/svgmake/internal/adapters/svg"
	"go.trai.ch/svgmake/internal/app"
	"go.trai.ch/svgmake/internal/core/domain"
	"go.trai.ch/svgmake/internal/core/ports"
	"go.trai.ch/svgmake/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

const vector = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 4 4"/>`

type fixture struct {
	loader   *mocks.MockConfigLoader
	metadata *mocks.MockMetadataReader
	locator  *mocks.MockRasterizerLocator
	sink     *mocks.MockScriptSink
	renderer *mocks.MockImageRenderer
	archiver *mocks.MockArchiver
	logger   *mocks.MockLogger
	watcher  *fakeWatcher
	stdout   *bytes.Buffer
	dir      string
	app      *app.App
}

// newFixture builds an App over a temp source tree. Each expected info message
// must be logged exactly once; other info and warn messages are ignored.
func newFixture(t *testing.T, expectedInfo ...string) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "source"), domain.DirPerm))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "source", "cursor.svg"), []byte(vector), domain.FilePerm))

	f := &fixture{
		loader:   mocks.NewMockConfigLoader(ctrl),
		metadata: mocks.NewMockMetadataReader(ctrl),
		locator:  mocks.NewMockRasterizerLocator(ctrl),
		sink:     mocks.NewMockScriptSink(ctrl),
		renderer: mocks.NewMockImageRenderer(ctrl),
		archiver: mocks.NewMockArchiver(ctrl),
		logger:   mocks.NewMockLogger(ctrl),
		watcher:  newFakeWatcher(),
		stdout:   &bytes.Buffer{},
		dir:      dir,
	}
	for _, msg := range expectedInfo {
		f.logger.EXPECT().Info(msg).Times(1)
	}
	f.logger.EXPECT().Info(gomock.Any()).AnyTimes()
	f.logger.EXPECT().Warn(gomock.Any()).AnyTimes()

	f.app = app.New(
		f.loader,
		f.metadata,
		f.locator,
		svg.NewParser(),
		fs.NewWalker(),
		shell.NewDialect(domain.PlatformLinux),
		f.sink,
		f.renderer,
		f.archiver,
		f.watcher,
		f.logger,
	).WithStdout(f.stdout).WithSelf("/usr/bin/svgmake").WithWorkDir(dir)

	return f
}

func (f *fixture) config() *domain.Config {
	cfg := domain.DefaultConfig()
	cfg.SourceDir = filepath.Join(f.dir, "source")
	cfg.BuildDir = filepath.Join(f.dir, "build")
	return cfg
}

func (f *fixture) expectMetadata() {
	f.metadata.EXPECT().
		Read(gomock.Any(), domain.DefaultMetadataSection, domain.DefaultMetadataKey).
		Return(domain.Metadata{Name: "Example", Version: "1.2.3"}, nil)
}

func rasterizerMock(t *testing.T, name, path string) *mocks.MockRasterizer {
	t.Helper()
	r := mocks.NewMockRasterizer(gomock.NewController(t))
	r.EXPECT().Name().Return(name).AnyTimes()
	r.EXPECT().Path().Return(path).AnyTimes()
	r.EXPECT().Command(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(in, out string, scale int) string {
			return name + " " + in + " " + out
		}).AnyTimes()
	return r
}

func TestGenerate_AutoSelectsFirstAvailableRasterizer(t *testing.T) {
	f := newFixture(t)
	cfg := f.config()
	f.loader.EXPECT().Load(f.dir).Return(cfg, nil)
	f.expectMetadata()

	f.locator.EXPECT().Names().Return([]string{"imagemagick", "rsvg", "inkscape", domain.RasterizerBuiltin})
	f.locator.EXPECT().Find("imagemagick").Return(nil, domain.ErrRasterizerNotFound)
	f.locator.EXPECT().Find("rsvg").Return(rasterizerMock(t, "rsvg", "/usr/bin/rsvg-convert"), nil)

	var written []byte
	f.sink.EXPECT().Write(domain.DefaultOutput, gomock.Any()).
		DoAndReturn(func(_ string, content []byte) (bool, error) {
			written = content
			return true, nil
		})

	err := f.app.Generate(context.Background(), app.GenerateOptions{})
	require.NoError(t, err)

	assert.Contains(t, string(written), "rsvg ")
	assert.Contains(t, string(written), "Example-1.2.3.osk")
	assert.Contains(t, string(written), "cursor@2x.png")
}

func TestGenerate_NoRasterizerFound(t *testing.T) {
	f := newFixture(t)
	f.loader.EXPECT().Load(f.dir).Return(f.config(), nil)
	f.expectMetadata()

	f.locator.EXPECT().Names().Return([]string{"imagemagick", domain.RasterizerBuiltin})
	f.locator.EXPECT().Find("imagemagick").Return(nil, domain.ErrRasterizerNotFound)

	err := f.app.Generate(context.Background(), app.GenerateOptions{})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNoRasterizer)
}

func TestGenerate_NamedRasterizerWithPathUsesOpen(t *testing.T) {
	f := newFixture(t)
	f.loader.EXPECT().Load(f.dir).Return(f.config(), nil)
	f.expectMetadata()

	f.locator.EXPECT().Open("inkscape", "/opt/inkscape").Return(rasterizerMock(t, "inkscape", "/opt/inkscape"), nil)

	err := f.app.Generate(context.Background(), app.GenerateOptions{
		Output:         domain.StdoutOutput,
		Rasterizer:     "inkscape",
		RasterizerPath: "/opt/inkscape",
	})
	require.NoError(t, err)
	assert.Contains(t, f.stdout.String(), "inkscape ")
}

func TestGenerate_NamedRasterizerMissing(t *testing.T) {
	f := newFixture(t)
	f.loader.EXPECT().Load(f.dir).Return(f.config(), nil)
	f.expectMetadata()

	f.locator.EXPECT().Find("rsvg").Return(nil, domain.ErrRasterizerNotFound)

	err := f.app.Generate(context.Background(), app.GenerateOptions{Rasterizer: "rsvg"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrNoRasterizer.Error())
}

func TestGenerate_BuiltinUsesSelf(t *testing.T) {
	f := newFixture(t)
	f.loader.EXPECT().Load(f.dir).Return(f.config(), nil)
	f.expectMetadata()

	f.locator.EXPECT().Open(domain.RasterizerBuiltin, "/usr/bin/svgmake").
		Return(rasterizerMock(t, domain.RasterizerBuiltin, "/usr/bin/svgmake"), nil)

	err := f.app.Generate(context.Background(), app.GenerateOptions{
		Output:     domain.StdoutOutput,
		Rasterizer: domain.RasterizerBuiltin,
	})
	require.NoError(t, err)
	assert.Contains(t, f.stdout.String(), "builtin ")
}

func TestGenerate_MetadataErrorStopsBeforeOutput(t *testing.T) {
	f := newFixture(t)
	f.loader.EXPECT().Load(f.dir).Return(f.config(), nil)
	f.metadata.EXPECT().Read(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(domain.Metadata{}, domain.ErrMetadataReadFailed)

	err := f.app.Generate(context.Background(), app.GenerateOptions{})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrMetadataReadFailed)
	assert.Empty(t, f.stdout.String())
}

func TestGenerate_FlagOverridesConfig(t *testing.T) {
	f := newFixture(t)
	f.loader.EXPECT().Load(f.dir).Return(f.config(), nil)
	f.expectMetadata()

	f.locator.EXPECT().Names().Return([]string{"rsvg"})
	f.locator.EXPECT().Find("rsvg").Return(rasterizerMock(t, "rsvg", "rsvg-convert"), nil)

	err := f.app.Generate(context.Background(), app.GenerateOptions{
		Output:   domain.StdoutOutput,
		BuildDir: "out",
	})
	require.NoError(t, err)
	assert.Contains(t, f.stdout.String(), filepath.Join("out", "cursor.png"))
}

func TestGenerate_ConfigError(t *testing.T) {
	f := newFixture(t)
	f.loader.EXPECT().Load(f.dir).Return(nil, domain.ErrConfigParseFailed)

	err := f.app.Generate(context.Background(), app.GenerateOptions{})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrConfigParseFailed)
}

func TestGenerate_UpToDateOutput(t *testing.T) {
	f := newFixture(t, domain.DefaultOutput+" is up to date")
	f.loader.EXPECT().Load(f.dir).Return(f.config(), nil)
	f.expectMetadata()
	f.locator.EXPECT().Names().Return([]string{"rsvg"})
	f.locator.EXPECT().Find("rsvg").Return(rasterizerMock(t, "rsvg", "rsvg-convert"), nil)
	f.sink.EXPECT().Write(domain.DefaultOutput, gomock.Any()).Return(false, nil)

	require.NoError(t, f.app.Generate(context.Background(), app.GenerateOptions{}))
}

func TestListRasterizers(t *testing.T) {
	f := newFixture(t)
	f.locator.EXPECT().Names().Return([]string{"imagemagick", "rsvg"})
	f.locator.EXPECT().Find("imagemagick").Return(nil, domain.ErrRasterizerNotFound)
	f.locator.EXPECT().Find("rsvg").Return(rasterizerMock(t, "rsvg", "/usr/bin/rsvg-convert"), nil)

	err := f.app.Generate(context.Background(), app.GenerateOptions{ListRasterizers: true})
	require.NoError(t, err)

	assert.Equal(t, "imagemagick  not found\nrsvg         /usr/bin/rsvg-convert\n", f.stdout.String())
}

func TestRasterize(t *testing.T) {
	f := newFixture(t)
	f.renderer.EXPECT().Render("in.svg", "out.png", 2).Return(nil)

	require.NoError(t, f.app.Rasterize(context.Background(), "in.svg", "out.png", 2))
}

func TestPack(t *testing.T) {
	f := newFixture(t, "Packed 2 files into Example-1.2.3.osk")
	files := []string{"build/a.png", "build/a@2x.png"}
	f.archiver.EXPECT().Pack("Example-1.2.3.osk", files).Return(nil)

	require.NoError(t, f.app.Pack(context.Background(), "Example-1.2.3.osk", files))
}

func TestPack_Error(t *testing.T) {
	f := newFixture(t)
	f.archiver.EXPECT().Pack(gomock.Any(), gomock.Any()).Return(domain.ErrDuplicateArchiveEntry)

	err := f.app.Pack(context.Background(), "x.osk", []string{"a/x.png", "b/x.png"})
	assert.ErrorIs(t, err, domain.ErrDuplicateArchiveEntry)
}

func TestWatch_RegeneratesOnChange(t *testing.T) {
	f := newFixture(t)
	f.app.WithDebounceWindow(time.Millisecond)

	f.loader.EXPECT().Load(f.dir).Return(f.config(), nil).Times(3)
	f.metadata.EXPECT().Read(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(domain.Metadata{Name: "Example", Version: "1.2.3"}, nil).Times(2)
	f.locator.EXPECT().Names().Return([]string{"rsvg"}).Times(2)
	f.locator.EXPECT().Find("rsvg").Return(rasterizerMock(t, "rsvg", "rsvg-convert"), nil).Times(2)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var calls sync.WaitGroup
	calls.Add(2)
	f.sink.EXPECT().Write(gomock.Any(), gomock.Any()).
		DoAndReturn(func(string, []byte) (bool, error) {
			calls.Done()
			return true, nil
		}).Times(2)

	done := make(chan error, 1)
	go func() { done <- f.app.Watch(ctx, app.GenerateOptions{}) }()

	<-f.watcher.started
	f.watcher.emit(ports.WatchEvent{Path: filepath.Join(f.dir, "source", "cursor.svg"), Operation: ports.OpWrite})

	calls.Wait()
	cancel()
	require.NoError(t, <-done)
	assert.Equal(t, filepath.Join(f.dir, "source"), f.watcher.root)
	assert.True(t, f.watcher.stopped)
}

func TestWatch_LogsFailedRunAndKeepsWatching(t *testing.T) {
	f := newFixture(t)
	f.loader.EXPECT().Load(f.dir).Return(f.config(), nil).Times(2)
	f.metadata.EXPECT().Read(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(domain.Metadata{}, domain.ErrMetadataKeyMissing)
	f.logger.EXPECT().Error(gomock.Any()).Times(1)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- f.app.Watch(ctx, app.GenerateOptions{}) }()

	<-f.watcher.started
	cancel()
	require.NoError(t, <-done)
}

func TestWatch_StartError(t *testing.T) {
	f := newFixture(t)
	f.watcher.startErr = domain.ErrWatchFailed
	f.loader.EXPECT().Load(f.dir).Return(f.config(), nil).Times(2)
	f.metadata.EXPECT().Read(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(domain.Metadata{}, errors.New("boom"))
	f.logger.EXPECT().Error(gomock.Any())

	err := f.app.Watch(context.Background(), app.GenerateOptions{})
	assert.ErrorIs(t, err, domain.ErrWatchFailed)
}

type fakeWatcher struct {
	events   chan ports.WatchEvent
	started  chan struct{}
	startErr error
	root     string
	stopped  bool
}

func newFakeWatcher() *fakeWatcher {
	return &fakeWatcher{
		events:  make(chan ports.WatchEvent, 1),
		started: make(chan struct{}),
	}
}

// Start mirrors the fsnotify adapter: the event stream ends when ctx is done.
func (w *fakeWatcher) Start(ctx context.Context, root string) error {
	if w.startErr != nil {
		return w.startErr
	}
	w.root = root
	close(w.started)
	go func() {
		<-ctx.Done()
		close(w.events)
	}()
	return nil
}

func (w *fakeWatcher) Stop() error {
	w.stopped = true
	return nil
}

func (w *fakeWatcher) Events() iter.Seq[ports.WatchEvent] {
	return func(yield func(ports.WatchEvent) bool) {
		for event := range w.events {
			if !yield(event) {
				return
			}
		}
	}
}

func (w *fakeWatcher) emit(event ports.WatchEvent) {
	w.events <- event
}
