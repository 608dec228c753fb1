package cmd

import (
	"bytes"
	"context"
	"path/filepath"
	"time"

	//nolint:golint
	//nolint:revive
	. "github.com/onsi/ginkgo/v2"

	//nolint:golint
	//nolint:revive
	. "github.com/onsi/gomega"

	"github.com/spf13/viper"

	"github.com/ApexioDaCoder/progresser/bar"
	"github.com/ApexioDaCoder/progresser/internal/config"
)

func execute(args ...string) (stdout, stderr string, err error) {
	return executeContext(context.Background(), args...)
}

func executeContext(ctx context.Context, args ...string) (stdout, stderr string, err error) {
	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err = root.ExecuteContext(ctx)
	return out.String(), errOut.String(), err
}

var _ = Describe("progresser", func() {
	var cfg string

	BeforeEach(func() {
		viper.Reset()
		cfg = filepath.Join(GinkgoT().TempDir(), "progresser.yaml")
	})

	Context("run", func() {
		It("fills the bar and finishes", func() {
			stdout, stderr, err := execute("run", "-c", cfg,
				"--size", "3", "--delay", "1ms", "--no-spinner", "--no-color", "--format", "{bar} {percent}%")
			Expect(err).NotTo(HaveOccurred())
			Expect(stdout).To(Equal("Done\n"))
			Expect(stderr).To(HavePrefix("\x1b[?25l"))
			Expect(stderr).To(ContainSubstring("[#--] 33%"))
			Expect(stderr).To(ContainSubstring("[###] 100%"))
			Expect(stderr).To(HaveSuffix("\x1b[?25h\n"))
		})

		It("logs above the bar", func() {
			_, stderr, err := execute("run", "-c", cfg,
				"--size", "2", "--delay", "1ms", "--no-spinner", "--no-color", "--interrupt-every", "1")
			Expect(err).NotTo(HaveOccurred())
			Expect(stderr).To(ContainSubstring("Completed 1 of 2"))
			Expect(stderr).To(ContainSubstring("Completed 2 of 2"))
			Expect(stderr).To(ContainSubstring("\x1b[2B\n"))
		})

		It("rejects a format without a bar", func() {
			_, stderr, err := execute("run", "-c", cfg, "--format", "{percent}%")
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring(`"{bar}"`))
			Expect(stderr).NotTo(ContainSubstring("\x1b[?25l"))
		})

		It("rejects a size of zero", func() {
			_, _, err := execute("run", "-c", cfg, "--size", "0", "--no-spinner")
			Expect(err).To(MatchError(ContainSubstring("size")))
		})

		It("restores the cursor when cancelled mid-run", func() {
			ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
			defer cancel()

			stdout, stderr, err := executeContext(ctx, "run", "-c", cfg,
				"--size", "5", "--delay", "1h", "--no-color", "--format", "{bar}")
			Expect(err).To(MatchError(context.DeadlineExceeded))
			Expect(stdout).To(BeEmpty())
			Expect(stderr).To(ContainSubstring("[-----]"))
			Expect(stderr).To(HaveSuffix("\x1b[?25h\n"))
		})

		It("reads the profile from the config file", func() {
			profile := config.Default()
			profile.Chars.Complete = bar.String("=")
			Expect(profile.Save(cfg)).To(Succeed())

			_, stderr, err := execute("run", "-c", cfg,
				"--size", "1", "--delay", "1ms", "--no-spinner", "--no-color", "--format", "{bar}")
			Expect(err).NotTo(HaveOccurred())
			Expect(stderr).To(ContainSubstring("[=]"))
		})
	})

	Context("styles", func() {
		It("lists every spinner style", func() {
			stdout, _, err := execute("styles")
			Expect(err).NotTo(HaveOccurred())
			Expect(stdout).To(ContainSubstring("NAME"))
			for _, name := range []string{"circle", "dots", "dots2", "ellipsis", "line"} {
				Expect(stdout).To(ContainSubstring(name))
			}
			Expect(stdout).To(ContainSubstring("500ms"))
		})
	})

	Context("config", func() {
		It("writes and shows the default profile", func() {
			stdout, _, err := execute("config", "init", "-c", cfg)
			Expect(err).NotTo(HaveOccurred())
			Expect(stdout).To(ContainSubstring(cfg))

			stdout, _, err = execute("config", "show", "-c", cfg)
			Expect(err).NotTo(HaveOccurred())
			Expect(stdout).To(ContainSubstring("size: 20"))
			Expect(stdout).To(ContainSubstring("style: dots"))
		})

		It("refuses to overwrite without --force", func() {
			_, _, err := execute("config", "init", "-c", cfg)
			Expect(err).NotTo(HaveOccurred())

			_, _, err = execute("config", "init", "-c", cfg)
			Expect(err).To(MatchError(ContainSubstring("already exists")))

			_, _, err = execute("config", "init", "-c", cfg, "--force")
			Expect(err).NotTo(HaveOccurred())
		})
	})

	Context("gen-md", func() {
		It("writes one page per command", func() {
			dir := GinkgoT().TempDir()
			_, _, err := execute("gen-md", dir)
			Expect(err).NotTo(HaveOccurred())
			Expect(filepath.Join(dir, "progresser_run.md")).To(BeAnExistingFile())
			Expect(filepath.Join(dir, "progresser_config_init.md")).To(BeAnExistingFile())
		})
	})

	Context("completion", func() {
		It("generates a bash script", func() {
			stdout, _, err := execute("completion", "bash")
			Expect(err).NotTo(HaveOccurred())
			Expect(stdout).To(ContainSubstring("bash completion"))
			Expect(stdout).To(ContainSubstring("progresser"))
		})

		It("rejects an unknown shell", func() {
			_, _, err := execute("completion", "tcsh")
			Expect(err).To(HaveOccurred())
		})
	})

	Context("version", func() {
		It("prints the commit", func() {
			Commit = "abc123"
			stdout, _, err := execute("version")
			Expect(err).NotTo(HaveOccurred())
			Expect(stdout).To(Equal("abc123\n"))
		})
	})
})
