package ascii

import (
	"strings"

	"github.com/muesli/termenv"
)

// logo is a piece of art whose lines may contain the markers {1} and {2} to
// switch between its two colors.
type logo struct {
	colors [2]string
	lines  []string
}

var logos = map[string]logo{
	"linux": {
		colors: [2]string{"7", "3"},
		lines: []string{
			"{1}        #####",
			"{1}       #######",
			"{1}       ##{2}O{1}#{2}O{1}##",
			"{1}       #{2}#####{1}#",
			"{1}     ##{2}##{1}###{2}##{1}##",
			"{1}    #{2}##########{1}##",
			"{1}   #{2}############{1}##",
			"{1}   #{2}############{1}###",
			"{2}  ##{1}#{2}###########{1}##{2}#",
			"{2}######{1}#{2}#######{1}#{2}######",
			"{2}#######{1}#{2}#####{1}#{2}#######",
			"{2}  #####{1}#######{2}#####",
		},
	},
	"arch": {
		colors: [2]string{"6", "6"},
		lines: []string{
			"{1}                   -`",
			"{1}                  .o+`",
			"{1}                 `ooo/",
			"{1}                `+oooo:",
			"{1}               `+oooooo:",
			"{1}               -+oooooo+:",
			"{1}             `/:-:++oooo+:",
			"{1}            `/++++/+++++++:",
			"{1}           `/++++++++++++++:",
			"{1}          `/+++ooooooooooooo/`",
			"{1}         ./ooosssso++osssssso+`",
			"{1}        .oossssso-````/ossssss+`",
			"{1}       -osssssso.      :ssssssso.",
			"{1}      :osssssss/        osssso+++.",
			"{1}     /ossssssss/        +ssssooo/-",
			"{1}   `/ossssso+/:-        -:/+osssso+-",
			"{1}  `+sso+:-`                 `.-/+oso:",
			"{1} `++:.                           `-/+/",
			"{1} .`                                 `/",
		},
	},
	"debian": {
		colors: [2]string{"1", "7"},
		lines: []string{
			"{2}       _,met$$$$$gg.",
			"{2}    ,g$$$$$$$$$$$$$$$P.",
			"{2}  ,g$$P\"        \"\"\"Y$$.\".",
			"{2} ,$$P'              `$$$.",
			"{2}',$$P       ,ggs.     `$$b:",
			"{2}`d$$'     ,$P\"'   {1}.{2}    $$$",
			"{2} $$P      d$'     {1},{2}    $$P",
			"{2} $$:      $$.   {1}-{2}    ,d$$'",
			"{2} $$;      Y$b._   _,d$P'",
			"{2} Y$$.    {1}`.{2}`\"Y$$$$P\"'",
			"{2} `$$b      {1}\"-.__",
			"{2}  `Y$$",
			"{2}   `Y$$.",
			"{2}     `$$b.",
			"{2}       `Y$$b.",
			"{2}          `\"Y$b._",
			"{2}              `\"\"\"",
		},
	},
	"ubuntu": {
		colors: [2]string{"1", "7"},
		lines: []string{
			"{1}            .-/+oossssoo+/-.",
			"{1}        `:+ssssssssssssssssss+:`",
			"{1}      -+ssssssssssssssssssyyssss+-",
			"{1}    .ossssssssssssssssss{2}dMMMNy{1}sssso.",
			"{1}   /sssssssssss{2}hdmmNNmmyNMMMMh{1}ssssss/",
			"{1}  +sssssssss{2}hmydMMMMMMMNddddy{1}ssssssss+",
			"{1} /ssssssss{2}hNMMMyhhyyyyhmNMMMNh{1}ssssssss/",
			"{1}.ssssssss{2}dMMMNh{1}ssssssssss{2}hNMMMd{1}ssssssss.",
			"{1}+ssss{2}hhhyNMMNy{1}ssssssssssss{2}yNMMMy{1}sssssss+",
			"{1}ossy{2}NMMMNyMMh{1}ssssssssssssss{2}hmmmh{1}ssssssso",
			"{1}+ssss{2}hhhyNMMNy{1}ssssssssssss{2}yNMMMy{1}sssssss+",
			"{1}.ssssssss{2}dMMMNh{1}ssssssssss{2}hNMMMd{1}ssssssss.",
			"{1} /ssssssss{2}hNMMMyhhyyyyhdNMMMNh{1}ssssssss/",
			"{1}  +sssssssss{2}dmydMMMMMMMMddddy{1}ssssssss+",
			"{1}   /sssssssssss{2}hdmNNNNmyNMMMMh{1}ssssss/",
			"{1}    .ossssssssssssssssss{2}dMMMNy{1}sssso.",
			"{1}      -+sssssssssssssssss{2}yyy{1}ssss+-",
			"{1}        `:+ssssssssssssssssss+:`",
			"{1}            .-/+oossssoo+/-.",
		},
	},
	"fedora": {
		colors: [2]string{"4", "7"},
		lines: []string{
			"{1}             .',;::::;,'.",
			"{1}         .';:cccccccccccc:;,.",
			"{1}      .;cccccccccccccccccccccc;.",
			"{1}    .:cccccccccccccccccccccccccc:.",
			"{1}  .;ccccccccccccc;{2}.:dddl:.{1};ccccccc;.",
			"{1} .:ccccccccccccc;{2}OWMKOOXMWd{1};ccccccc:.",
			"{1}.:ccccccccccccc;{2}KMMc{1};cc;{2}xMMc{1};ccccccc:.",
			"{1},cccccccccccccc;{2}MMM.{1};cc;{2};WW:{1};cccccccc,",
			"{1}:cccccccccccccc;{2}MMM.{1};cccccccccccccccc:",
			"{1}:ccccccc;{2}oxOOOo{1};{2}MMM0OOk.{1};cccccccccccc:",
			"{1}cccccc;{2}0MMKxdd:{1};{2}MMMkddc.{1};cccccccccccc;",
			"{1}ccccc;{2}XM0'{1};cccc;{2}MMM.{1};cccccccccccccccc'",
			"{1}ccccc;{2}MMo{1};ccccc;{2}MMW.{1};ccccccccccccccc;",
			"{1}ccccc;{2}0MNc.{1}ccc{2}.xMMd{1};ccccccccccccccc;",
			"{1}cccccc;{2}dNMWXXXWM0:{1};cccccccccccccc:,",
			"{1}cccccccc;{2}.:odl:.{1};cccccccccccccc:,.",
			"{1}:cccccccccccccccccccccccccccc:'.",
			"{1}.:cccccccccccccccccccccc:;,..",
			"{1}  '::cccccccccccccc::;,.",
		},
	},
	"darwin": {
		colors: [2]string{"2", "3"},
		lines: []string{
			"{1}                    'c.",
			"{1}                 ,xNMM.",
			"{1}               .OMMMMo",
			"{1}               OMMM0,",
			"{1}     .;loddo:' loolloddol;.",
			"{1}   cKMMMMMMMMMMNWMMMMMMMMMM0:",
			"{2} .KMMMMMMMMMMMMMMMMMMMMMMMWd.",
			"{2} XMMMMMMMMMMMMMMMMMMMMMMMX.",
			"{2};MMMMMMMMMMMMMMMMMMMMMMMM:",
			"{2}:MMMMMMMMMMMMMMMMMMMMMMMM:",
			"{2}.MMMMMMMMMMMMMMMMMMMMMMMMX.",
			"{2} kMMMMMMMMMMMMMMMMMMMMMMMMWd.",
			"{2} .XMMMMMMMMMMMMMMMMMMMMMMMMMMk",
			"{2}  .XMMMMMMMMMMMMMMMMMMMMMMMMK.",
			"{2}    kMMMMMMMMMMMMMMMMMMMMMMd",
			"{2}     ;KMMMMMMMWXXWMMMMMMMk.",
			"{2}       .cooc,.    .,coo:.",
		},
	},
	"windows": {
		colors: [2]string{"6", "6"},
		lines: []string{
			"{1}                               ..,,",
			"{1}                    ....,,:;+ccllll",
			"{1}      ...,,+:;  cllllllllllllllllll",
			"{1},cclllllllllll  lllllllllllllllllll",
			"{1}llllllllllllll  lllllllllllllllllll",
			"{1}llllllllllllll  lllllllllllllllllll",
			"{1}llllllllllllll  lllllllllllllllllll",
			"{1}llllllllllllll  lllllllllllllllllll",
			"{1}llllllllllllll  lllllllllllllllllll",
			"",
			"{1}llllllllllllll  lllllllllllllllllll",
			"{1}llllllllllllll  lllllllllllllllllll",
			"{1}llllllllllllll  lllllllllllllllllll",
			"{1}llllllllllllll  lllllllllllllllllll",
			"{1}llllllllllllll  lllllllllllllllllll",
			"{1}`'ccllllllllll  lllllllllllllllllll",
			"{1}       `' \\*::  :ccllllllllllllllll",
			"{1}                       ````''*::cll",
			"{1}                                 ``",
		},
	},
	"windows-server": {
		colors: [2]string{"4", "7"},
		lines: []string{
			"{1}        ,.=:!!t3Z3z.,",
			"{1}       :tt:::tt333EE3",
			"{1}       Et:::ztt33EEEL{2} @Ee.,      ..,",
			"{1}      ;tt:::tt333EE7{2} ;EEEEEEttttt33#",
			"{1}     :Et:::zt333EEQ.{2} $EEEEEttttt33QL",
			"{1}     it::::tt333EEF{2} @EEEEEEttttt33F",
			"{1}    ;3=*^```\"*4EEV{2} :EEEEEEttttt33@.",
			"{1}    ,.=::::!t=., {2}`{1} @EEEEEEtttz33QF",
			"{1}   ;::::::::zt33){2}   \"4EEEtttji3P*",
			"{1}  :t::::::::tt33.{2}:Z3z..  `` ,..g.",
			"{1}  i::::::::zt33F{2} AEEEtttt::::ztF",
			"{1} ;:::::::::t33V{2} ;EEEttttt::::t3",
			"{1} E::::::::zt33L{2} @EEEtttt::::z3F",
			"{1}{3=*^```\"*4E3){2} ;EEEtttt:::::tZ`",
			"{1}             `{2} :EEEEtttt::::z7",
			"{2}                 \"VEzjt:;;z>*`",
		},
	},
}

// aliases map distribution ids onto a logo they share.
var aliases = map[string]string{
	"macos":       "darwin",
	"raspbian":    "debian",
	"archarm":     "arch",
	"manjaro":     "arch",
	"endeavouros": "arch",
	"pop":         "ubuntu",
	"neon":        "ubuntu",
	"kubuntu":     "ubuntu",
	"xubuntu":     "ubuntu",
	"nobara":      "fedora",
}

// Names lists the logos that can be requested.
func Names() []string {
	names := make([]string, 0, len(logos))
	for name := range logos {
		names = append(names, name)
	}
	return names
}

// Logo returns the colored art for a distribution id, falling back to the
// generic Linux penguin for unknown ids.
//
// Parameters:
//   - id: a distribution id such as "debian", or a logo name from Names
//   - p: the color profile; termenv.Ascii yields plain text
//
// Returns:
//   - One string per line of art
func Logo(id string, p termenv.Profile) []string {
	id = strings.ToLower(id)
	if alias, ok := aliases[id]; ok {
		id = alias
	}
	l, ok := logos[id]
	if !ok {
		l = logos["linux"]
	}

	out := make([]string, len(l.lines))
	for i, line := range l.lines {
		out[i] = l.render(line, p)
	}
	return out
}

// render replaces the color markers in one line with styled segments.
func (l logo) render(line string, p termenv.Profile) string {
	var b strings.Builder
	color := l.colors[0]
	for line != "" {
		idx := strings.Index(line, "{")
		var seg string
		if idx >= 0 && idx+2 < len(line) && line[idx+2] == '}' && (line[idx+1] == '1' || line[idx+1] == '2') {
			seg = line[:idx]
			next := l.colors[line[idx+1]-'1']
			line = line[idx+3:]
			b.WriteString(style(seg, color, p))
			color = next
			continue
		}
		if idx >= 0 {
			seg, line = line[:idx+1], line[idx+1:]
		} else {
			seg, line = line, ""
		}
		b.WriteString(style(seg, color, p))
	}
	return b.String()
}

func style(s, color string, p termenv.Profile) string {
	if s == "" {
		return ""
	}
	return p.String(s).Foreground(p.Color(color)).String()
}
