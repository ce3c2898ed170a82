package ui

import "github.com/pterm/pterm"

const LogoASCII = `
      (o)---------(o)
       |  \     /  |
       |   \   /   |
       |    (o)    |
       |   /   \   |
       |  /     \  |
      (o)---------(o)

     /===============\
    /                 \
   /      cartctl      \
   \                   /
    \                 /
     \===============/
`

func PrintBanner() {
	pterm.DefaultCenter.Println(pterm.NewRGB(0, 168, 204).Sprint(LogoASCII))
}
