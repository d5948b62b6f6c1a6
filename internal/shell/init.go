package shell

import (
	"fmt"
	"io"
)

// WriteBashInit writes the bash shell integration script to the writer.
func WriteBashInit(w io.Writer) {
	fmt.Fprint(w, `# devoto shell integration
__devoto_prompt_hook() {
  eval "$(command devoto status --env 2>/dev/null)"
}

devoto_prompt_info() {
  command devoto status 2>/dev/null
}

if [[ -z "$PROMPT_COMMAND" ]]; then
  PROMPT_COMMAND="__devoto_prompt_hook"
else
  PROMPT_COMMAND="__devoto_prompt_hook;${PROMPT_COMMAND}"
fi

eval "$(command devoto completion bash 2>/dev/null)"
`)
}

// WriteZshInit writes the zsh shell integration script to the writer.
func WriteZshInit(w io.Writer) {
	fmt.Fprint(w, `# devoto shell integration
__devoto_prompt_hook() {
  eval "$(command devoto status --env 2>/dev/null)"
}

devoto_prompt_info() {
  command devoto status 2>/dev/null
}

autoload -Uz add-zsh-hook
add-zsh-hook precmd __devoto_prompt_hook

eval "$(command devoto completion zsh 2>/dev/null)"
`)
}
