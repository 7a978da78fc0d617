package sentiment

// afinnLexicon maps words to AFINN valences in [-5,5]. This is the
// high-frequency subset of the AFINN-165 list; words outside it are
// treated as neutral.
var afinnLexicon = map[string]float64{
	"abandon":      -2,
	"abuse":        -3,
	"abusive":      -3,
	"accept":       1,
	"accepted":     1,
	"accident":     -2,
	"accomplish":   2,
	"accomplished": 2,
	"ache":         -2,
	"achievable":   1,
	"admire":       3,
	"admit":        -1,
	"adopt":        1,
	"adorable":     3,
	"adore":        3,
	"advantage":    2,
	"adventure":    2,
	"afraid":       -2,
	"aggressive":   -2,
	"agree":        1,
	"alarm":        -2,
	"alive":        1,
	"amazing":      4,
	"ambitious":    2,
	"angry":        -3,
	"annoy":        -2,
	"annoyed":      -2,
	"annoying":     -2,
	"anxious":      -2,
	"apologise":    -1,
	"apologize":    -1,
	"appalling":    -2,
	"appease":      2,
	"applaud":      2,
	"appreciate":   2,
	"appreciated":  2,
	"approval":     2,
	"approve":      2,
	"argue":        -2,
	"argument":     -2,
	"arrogant":     -2,
	"ashamed":      -2,
	"attack":       -1,
	"attract":      1,
	"attractive":   2,
	"authority":    1,
	"avoid":        -1,
	"award":        3,
	"awarded":      3,
	"awesome":      4,
	"awful":        -3,
	"awkward":      -2,
	"bad":          -3,
	"badly":        -3,
	"ban":          -2,
	"banned":       -2,
	"bastard":      -5,
	"battle":       -1,
	"beautiful":    3,
	"beloved":      3,
	"benefit":      2,
	"best":         3,
	"betray":       -3,
	"betrayed":     -3,
	"better":       2,
	"bitch":        -5,
	"bitter":       -2,
	"bizarre":      -2,
	"blame":        -2,
	"bless":        2,
	"blessing":     3,
	"block":        -1,
	"bold":         2,
	"bomb":         -1,
	"bore":         -2,
	"bored":        -2,
	"boring":       -3,
	"bother":       -2,
	"brave":        2,
	"breathtaking": 5,
	"bright":       1,
	"brilliant":    4,
	"broke":        -1,
	"broken":       -1,
	"brutal":       -3,
	"bullshit":     -4,
	"bully":        -2,
	"calm":         2,
	"cancel":       -1,
	"cancelled":    -1,
	"cancer":       -1,
	"capable":      1,
	"care":         2,
	"careful":      2,
	"careless":     -2,
	"catastrophic": -4,
	"celebrate":    3,
	"celebrated":   3,
	"champion":     2,
	"chaos":        -2,
	"chaotic":      -2,
	"charm":        3,
	"charming":     3,
	"cheat":        -3,
	"cheated":      -3,
	"cheer":        2,
	"cheerful":     2,
	"cherish":      2,
	"clean":        2,
	"clever":       2,
	"collapse":     -2,
	"comfort":      2,
	"comfortable":  2,
	"commit":       1,
	"complain":     -2,
	"complaint":    -2,
	"confident":    2,
	"conflict":     -2,
	"confuse":      -2,
	"confused":     -2,
	"confusing":    -2,
	"congrats":     2,
	"congratulate": 2,
	"cool":         1,
	"corrupt":      -3,
	"courage":      2,
	"courageous":   2,
	"coward":       -2,
	"crap":         -3,
	"crash":        -2,
	"crazy":        -2,
	"creative":     2,
	"crime":        -3,
	"criminal":     -3,
	"crisis":       -3,
	"critical":     -2,
	"criticism":    -2,
	"criticize":    -2,
	"cruel":        -3,
	"cry":          -1,
	"crying":       -2,
	"curious":      1,
	"cute":         2,
	"cutting":      -1,
	"damage":       -3,
	"damn":         -4,
	"danger":       -2,
	"dangerous":    -2,
	"daring":       2,
	"dead":         -3,
	"death":        -2,
	"debt":         -2,
	"deceive":      -3,
	"defeat":       -2,
	"defeated":     -2,
	"defect":       -3,
	"delight":      3,
	"delighted":    3,
	"delightful":   3,
	"denied":       -2,
	"deny":         -2,
	"depressed":    -2,
	"depressing":   -2,
	"desperate":    -3,
	"despise":      -3,
	"destroy":      -3,
	"destroyed":    -3,
	"devastate":    -2,
	"devastated":   -2,
	"die":          -3,
	"difficult":    -1,
	"dirty":        -2,
	"disagree":     -2,
	"disappoint":   -2,
	"disappointed": -2,
	"disaster":     -2,
	"disgust":      -3,
	"disgusted":    -3,
	"disgusting":   -3,
	"dishonest":    -2,
	"dislike":      -2,
	"dismal":       -2,
	"distrust":     -3,
	"disturbing":   -2,
	"doubt":        -1,
	"dream":        1,
	"dull":         -2,
	"dumb":         -3,
	"dump":         -1,
	"dying":        -2,
	"eager":        2,
	"easy":         1,
	"ecstatic":     4,
	"effective":    2,
	"elegant":      2,
	"embarrass":    -2,
	"embarrassed":  -2,
	"empower":      2,
	"empty":        -1,
	"encourage":    2,
	"encouraged":   2,
	"enemy":        -2,
	"energetic":    2,
	"engage":       1,
	"enjoy":        2,
	"enjoyed":      2,
	"enthusiastic": 3,
	"error":        -2,
	"evil":         -3,
	"excellent":    3,
	"excite":       3,
	"excited":      3,
	"exciting":     3,
	"exhausted":    -2,
	"fabulous":     4,
	"fail":         -2,
	"failed":       -2,
	"failure":      -2,
	"fair":         2,
	"fake":         -3,
	"fantastic":    4,
	"fascinate":    3,
	"fascinating":  3,
	"fatal":        -3,
	"fault":        -2,
	"favorite":     2,
	"fear":         -2,
	"fearful":      -2,
	"fearless":     2,
	"fiasco":       -3,
	"fight":        -1,
	"filthy":       -2,
	"fine":         2,
	"fire":         -2,
	"fired":        -2,
	"flawless":     2,
	"fool":         -2,
	"foolish":      -2,
	"forgive":      1,
	"fraud":        -4,
	"free":         1,
	"freedom":      2,
	"fresh":        1,
	"friendly":     2,
	"frightened":   -2,
	"frustrated":   -2,
	"frustrating":  -2,
	"fun":          4,
	"funnier":      4,
	"funny":        4,
	"furious":      -3,
	"generous":     2,
	"genius":       4,
	"gentle":       2,
	"gift":         2,
	"glad":         3,
	"glamorous":    3,
	"gloomy":       -1,
	"god":          1,
	"good":         3,
	"gorgeous":     3,
	"grace":        1,
	"graceful":     2,
	"grand":        3,
	"grateful":     3,
	"great":        3,
	"greater":      3,
	"greatest":     3,
	"greed":        -3,
	"greedy":       -2,
	"grief":        -2,
	"growing":      1,
	"guilt":        -3,
	"guilty":       -3,
	"ha":           2,
	"haha":         3,
	"hahaha":       4,
	"happy":        3,
	"harass":       -3,
	"harm":         -2,
	"harmful":      -2,
	"harsh":        -2,
	"hate":         -3,
	"hated":        -3,
	"hates":        -3,
	"haunting":     -1,
	"heal":         2,
	"healthy":      2,
	"heartbreaking": -3,
	"heartbroken":  -3,
	"heaven":       2,
	"hell":         -4,
	"help":         2,
	"helpful":      2,
	"helpless":     -2,
	"hero":         2,
	"hilarious":    2,
	"honest":       2,
	"honor":        2,
	"hope":         2,
	"hopeful":      2,
	"hopeless":     -2,
	"horrible":     -3,
	"horrific":     -3,
	"horror":       -3,
	"hostile":      -2,
	"hug":          2,
	"humiliated":   -3,
	"humor":        2,
	"hurt":         -2,
	"hurts":        -2,
	"idiot":        -3,
	"ignorant":     -2,
	"ignore":       -1,
	"ignored":      -2,
	"ill":          -2,
	"imperfect":    -2,
	"important":    2,
	"impress":      3,
	"impressed":    3,
	"impressive":   3,
	"improve":      2,
	"improved":     2,
	"incompetent":  -2,
	"incredible":   4,
	"inferior":     -2,
	"innovative":   2,
	"insane":       -2,
	"inspire":      2,
	"inspired":     2,
	"inspiring":    3,
	"insult":       -2,
	"insulted":     -2,
	"intelligent":  2,
	"interesting":  2,
	"jackass":      -4,
	"jealous":      -2,
	"jerk":         -3,
	"joke":         2,
	"jolly":        2,
	"joy":          3,
	"joyful":       3,
	"justice":      2,
	"keen":         1,
	"kill":         -3,
	"killed":       -3,
	"kind":         2,
	"kiss":         2,
	"laugh":        1,
	"laughing":     2,
	"lazy":         -1,
	"leak":         -1,
	"liar":         -3,
	"lie":          -1,
	"lied":         -2,
	"like":         2,
	"liked":        2,
	"likes":        2,
	"litigious":    -2,
	"lively":       2,
	"lol":          3,
	"lonely":       -2,
	"lose":         -3,
	"losing":       -3,
	"loss":         -3,
	"lost":         -3,
	"love":         3,
	"loved":        3,
	"lovely":       3,
	"loves":        3,
	"loving":       2,
	"lucky":        3,
	"lying":        -1,
	"mad":          -3,
	"magnificent":  3,
	"marvelous":    3,
	"masterpiece":  4,
	"mediocre":     -3,
	"menace":       -2,
	"mess":         -2,
	"miserable":    -3,
	"misery":       -2,
	"miss":         -2,
	"missed":       -2,
	"missing":      -2,
	"mistake":      -2,
	"mistaken":     -2,
	"mock":         -2,
	"motivate":     1,
	"motivated":    2,
	"murder":       -2,
	"nasty":        -3,
	"natural":      1,
	"neat":         1,
	"nervous":      -2,
	"nice":         3,
	"no":           -1,
	"noble":        2,
	"nonsense":     -2,
	"notorious":    -2,
	"obnoxious":    -3,
	"offend":       -2,
	"offended":     -2,
	"offensive":    -2,
	"ok":           2,
	"okay":         2,
	"opportunity":  2,
	"optimistic":   2,
	"outrage":      -3,
	"outraged":     -3,
	"outstanding":  5,
	"overjoyed":    4,
	"pain":         -2,
	"painful":      -2,
	"panic":        -3,
	"paradise":     3,
	"passion":      1,
	"passionate":   2,
	"pathetic":     -2,
	"peace":        2,
	"peaceful":     2,
	"perfect":      3,
	"perfectly":    3,
	"pessimistic":  -2,
	"pleasant":     3,
	"please":       1,
	"pleased":      3,
	"pleasure":     3,
	"poison":       -2,
	"poor":         -2,
	"popular":      3,
	"positive":     2,
	"powerful":     2,
	"praise":       3,
	"praised":      3,
	"pretty":       1,
	"problem":      -2,
	"problems":     -2,
	"progress":     2,
	"promise":      1,
	"promising":    2,
	"protect":      1,
	"proud":        2,
	"punish":       -2,
	"pushy":        -1,
	"quit":         -1,
	"rage":         -2,
	"reckless":     -2,
	"recommend":    2,
	"recommended":  2,
	"refuse":       -2,
	"refused":      -2,
	"regret":       -2,
	"regrets":      -2,
	"reject":       -1,
	"rejected":     -1,
	"relaxed":      2,
	"reliable":     2,
	"relieved":     2,
	"remarkable":   2,
	"rescue":       2,
	"resentful":    -2,
	"resolve":      2,
	"respect":      2,
	"respected":    2,
	"restful":      2,
	"restore":      1,
	"revenge":      -2,
	"reward":       2,
	"rewarded":     2,
	"rich":         2,
	"ridiculous":   -3,
	"rig":          -1,
	"rigged":       -1,
	"risk":         -2,
	"rob":          -2,
	"robber":       -2,
	"rotten":       -3,
	"rude":         -2,
	"ruin":         -2,
	"ruined":       -2,
	"sad":          -2,
	"sadly":        -2,
	"safe":         1,
	"satisfied":    2,
	"savage":       -2,
	"save":         2,
	"saved":        2,
	"scam":         -2,
	"scandal":      -3,
	"scare":        -2,
	"scared":       -2,
	"scary":        -2,
	"secure":       2,
	"selfish":      -3,
	"sentimental":  1,
	"serene":       2,
	"severe":       -2,
	"shame":        -2,
	"shameful":     -2,
	"share":        1,
	"shit":         -4,
	"shitty":       -3,
	"shock":        -2,
	"shocked":      -2,
	"shocking":     -2,
	"shoot":        -1,
	"shy":          -1,
	"sick":         -2,
	"significant":  1,
	"silly":        -1,
	"sincere":      2,
	"skeptical":    -2,
	"smart":        1,
	"smile":        2,
	"smiling":      2,
	"smug":         -2,
	"solid":        2,
	"solution":     1,
	"solutions":    1,
	"solve":        1,
	"solved":       1,
	"sorry":        -1,
	"special":      2,
	"spectacular":  5,
	"splendid":     3,
	"steal":        -2,
	"stealing":     -2,
	"stink":        -2,
	"stolen":       -2,
	"stop":         -1,
	"strange":      -1,
	"strength":     2,
	"stress":       -1,
	"stressed":     -2,
	"strike":       -1,
	"strong":       2,
	"struggle":     -2,
	"struggling":   -2,
	"stunning":     4,
	"stupid":       -2,
	"success":      2,
	"successful":   3,
	"suck":         -3,
	"sucks":        -3,
	"suffer":       -2,
	"suffering":    -2,
	"suicide":      -2,
	"super":        3,
	"superb":       5,
	"superior":     2,
	"support":      2,
	"supported":    2,
	"supportive":   2,
	"surprised":    1,
	"suspicious":   -2,
	"sweet":        2,
	"terrible":     -3,
	"terribly":     -3,
	"terrific":     4,
	"terrified":    -3,
	"terror":       -3,
	"thank":        2,
	"thankful":     2,
	"thanks":       2,
	"threat":       -2,
	"threaten":     -2,
	"thrilled":     5,
	"tired":        -2,
	"top":          2,
	"torture":      -4,
	"tough":        -2,
	"toxic":        -3,
	"tragedy":      -2,
	"tragic":       -2,
	"trauma":       -3,
	"triumph":      4,
	"trouble":      -2,
	"true":         2,
	"trust":        1,
	"trusted":      2,
	"ugly":         -3,
	"unacceptable": -2,
	"unbelievable": -1,
	"uncertain":    -1,
	"uncomfortable": -2,
	"unfair":       -2,
	"unfortunate":  -2,
	"unhappy":      -2,
	"unimpressed":  -2,
	"unique":       1,
	"united":       1,
	"unprofessional": -2,
	"unreliable":   -2,
	"unsafe":       -2,
	"unstable":     -2,
	"upset":        -2,
	"useful":       2,
	"useless":     -2,
	"vague":        -2,
	"valuable":     2,
	"vibrant":      3,
	"vicious":      -2,
	"victim":       -3,
	"victory":      3,
	"violence":     -3,
	"violent":      -3,
	"vulnerable":   -2,
	"want":         1,
	"war":          -2,
	"warm":         1,
	"warning":      -3,
	"waste":        -1,
	"wasted":       -2,
	"weak":         -2,
	"wealthy":      2,
	"weird":        -2,
	"welcome":      2,
	"whine":        -2,
	"whitewash":    -3,
	"win":          4,
	"winner":       4,
	"winning":      4,
	"wish":         1,
	"won":          3,
	"wonderful":    4,
	"worn":         -1,
	"worried":      -3,
	"worry":        -3,
	"worse":        -3,
	"worst":        -3,
	"worth":        2,
	"worthless":    -2,
	"worthy":       2,
	"wow":          4,
	"wrong":        -2,
	"wtf":          -4,
	"yeah":         1,
	"yes":          1,
	"yummy":        3,
	"zealous":      2,
}
