package interactive

import (
	"context"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/manifoldco/promptui"
	"github.com/trebuchet-org/forkcfg/internal/domain/config"
	"github.com/trebuchet-org/forkcfg/internal/usecase"
)

// PrompterAdapter asks for secrets values on the terminal
type PrompterAdapter struct {
	config *config.RuntimeConfig
}

// NewPrompterAdapter creates a new prompter adapter
func NewPrompterAdapter(cfg *config.RuntimeConfig) *PrompterAdapter {
	return &PrompterAdapter{config: cfg}
}

// PromptValue asks for a value for key, offering current as the default
func (p *PrompterAdapter) PromptValue(ctx context.Context, key, current string) (string, error) {
	if p.config.NonInteractive {
		return current, nil
	}

	prompt := promptui.Prompt{
		Label:   color.New(color.FgCyan).Sprint(key),
		Default: current,
		Mask:    maskFor(key),
	}

	value, err := prompt.Run()
	if err != nil {
		return "", fmt.Errorf("prompt cancelled: %w", err)
	}
	return strings.TrimSpace(value), nil
}

// maskFor hides input for keys that look like credentials
func maskFor(key string) rune {
	upper := strings.ToUpper(key)
	for _, marker := range []string{"KEY", "SECRET", "TOKEN", "PASSWORD"} {
		if strings.Contains(upper, marker) {
			return '*'
		}
	}
	return 0
}

// Ensure the adapter implements the interface
var _ usecase.ValuePrompter = (*PrompterAdapter)(nil)
