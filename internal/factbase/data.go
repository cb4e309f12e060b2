package factbase

import "procwarden/internal/core"

// knownProcesses is keyed by lowercase executable base name. Tier zero value
// is TierSafe, so only Caution/Critical entries set it explicitly.
var knownProcesses = map[string]Entry{
	// --- Core operating system (never kill) ---
	"system": {
		Description: "Windows kernel and system threads",
		Publisher:   "Microsoft", Category: CategorySystemCritical, Tier: core.TierCritical,
		KillImpact: "Terminating this will crash or destabilize the operating system.",
	},
	"system idle process": {
		Description: "Idle CPU time accounting",
		Publisher:   "Microsoft", Category: CategorySystemCritical, Tier: core.TierCritical,
		KillImpact: "Not a real process; cannot be terminated.",
	},
	"smss.exe": {
		Description: "Session Manager Subsystem",
		Publisher:   "Microsoft", Category: CategorySystemCritical, Tier: core.TierCritical,
		KillImpact: "Immediate system crash (bugcheck).",
	},
	"csrss.exe": {
		Description: "Client/Server Runtime Subsystem",
		Publisher:   "Microsoft", Category: CategorySystemCritical, Tier: core.TierCritical,
		KillImpact: "Immediate system crash (bugcheck).",
	},
	"wininit.exe": {
		Description: "Windows Startup Application",
		Publisher:   "Microsoft", Category: CategorySystemCritical, Tier: core.TierCritical,
		KillImpact: "Immediate system crash.",
	},
	"winlogon.exe": {
		Description: "Windows Logon Application",
		Publisher:   "Microsoft", Category: CategorySystemCritical, Tier: core.TierCritical,
		KillImpact: "Logs out the session or crashes the system.",
	},
	"services.exe": {
		Description: "Service Control Manager",
		Publisher:   "Microsoft", Category: CategorySystemCritical, Tier: core.TierCritical,
		KillImpact: "All services stop; the system becomes unusable and restarts.",
	},
	"lsass.exe": {
		Description: "Local Security Authority Subsystem",
		Publisher:   "Microsoft", Category: CategorySystemCritical, Tier: core.TierCritical,
		KillImpact: "Forced restart within one minute; authentication breaks.",
	},
	"lsaiso.exe": {
		Description: "Credential Guard isolated LSA",
		Publisher:   "Microsoft", Category: CategorySystemCritical, Tier: core.TierCritical,
		KillImpact: "Credential isolation fails; system instability.",
	},
	"ntoskrnl.exe": {
		Description: "Windows NT kernel image",
		Publisher:   "Microsoft", Category: CategorySystemCritical, Tier: core.TierCritical,
		KillImpact: "Cannot be terminated.",
	},
	"registry": {
		Description: "Registry hive management process",
		Publisher:   "Microsoft", Category: CategorySystemCritical, Tier: core.TierCritical,
		KillImpact: "Registry access fails system-wide.",
	},
	"memory compression": {
		Description: "Compressed memory store",
		Publisher:   "Microsoft", Category: CategorySystemCritical, Tier: core.TierCritical,
		KillImpact: "Memory management degrades; possible crash.",
	},
	"trustedinstaller.exe": {
		Description: "Windows Modules Installer",
		Publisher:   "Microsoft", Category: CategorySystemCritical, Tier: core.TierCritical,
		KillImpact: "Windows Update installs fail or corrupt.",
	},
	"fontdrvhost.exe": {
		Description: "Usermode Font Driver Host",
		Publisher:   "Microsoft", Category: CategorySystemCritical, Tier: core.TierCritical,
		KillImpact: "Text rendering breaks across the session.",
	},
	"dwm.exe": {
		Description: "Desktop Window Manager — draws every window",
		Publisher:   "Microsoft", Category: CategorySystemCritical, Tier: core.TierCritical,
		KillImpact: "Screen goes black until it restarts; may loop.",
	},

	// --- Services and session infrastructure (caution) ---
	"svchost.exe": {
		Description: "Service Host — generic container for Windows services",
		Publisher:   "Microsoft", Category: CategoryWindowsService, Tier: core.TierCaution,
		KillImpact: "Every service hosted in this instance stops at once.",
	},
	"explorer.exe": {
		Description: "Windows Explorer — desktop, taskbar, and file manager",
		Publisher:   "Microsoft", Category: CategoryWindowsService, Tier: core.TierCaution,
		KillImpact: "Desktop and taskbar disappear until restarted.",
	},
	"spoolsv.exe": {
		Description: "Print Spooler service",
		Publisher:   "Microsoft", Category: CategoryWindowsService, Tier: core.TierCaution,
		KillImpact: "Printing stops working.",
	},
	"searchindexer.exe": {
		Description: "Windows Search indexer",
		Publisher:   "Microsoft", Category: CategoryWindowsService, Tier: core.TierCaution,
		KillImpact: "File search becomes slow or incomplete.",
	},
	"audiodg.exe": {
		Description: "Windows Audio Device Graph Isolation",
		Publisher:   "Microsoft", Category: CategoryWindowsService, Tier: core.TierCaution,
		KillImpact: "All audio stops until the service restarts.",
	},
	"msmpeng.exe": {
		Description: "Microsoft Defender Antimalware Service",
		Publisher:   "Microsoft", Category: CategoryWindowsService, Tier: core.TierCaution,
		KillImpact: "Real-time malware protection is disabled.",
	},
	"securityhealthservice.exe": {
		Description: "Windows Security Health Service",
		Publisher:   "Microsoft", Category: CategoryWindowsService, Tier: core.TierCaution,
		KillImpact: "Security status reporting stops.",
	},
	"wlanext.exe": {
		Description: "WLAN AutoConfig extensibility host",
		Publisher:   "Microsoft", Category: CategoryWindowsService, Tier: core.TierCaution,
		KillImpact: "Wi-Fi connectivity may drop.",
	},
	"nissrv.exe": {
		Description: "Defender Network Inspection Service",
		Publisher:   "Microsoft", Category: CategoryWindowsService, Tier: core.TierCaution,
		KillImpact: "Network threat inspection stops.",
	},
	"wudfhost.exe": {
		Description: "User-Mode Driver Framework host",
		Publisher:   "Microsoft", Category: CategoryWindowsService, Tier: core.TierCaution,
		KillImpact: "Devices served by user-mode drivers stop working.",
	},
	"taskhostw.exe": {
		Description: "Host for Windows background tasks",
		Publisher:   "Microsoft", Category: CategoryWindowsService, Tier: core.TierCaution,
		KillImpact: "Scheduled background tasks are interrupted.",
	},
	"sihost.exe": {
		Description: "Shell Infrastructure Host — start menu, action center",
		Publisher:   "Microsoft", Category: CategoryWindowsService, Tier: core.TierCaution,
		KillImpact: "Start menu and notifications stop responding.",
	},
	"ctfmon.exe": {
		Description: "Text input and language bar services",
		Publisher:   "Microsoft", Category: CategoryWindowsService, Tier: core.TierCaution,
		KillImpact: "Input methods and language switching break.",
	},
	"dllhost.exe": {
		Description: "COM Surrogate — hosts a COM component out of process",
		Publisher:   "Microsoft", Category: CategoryWindowsService, Tier: core.TierCaution,
		KillImpact: "The hosted component's consumer may fail.",
	},
	"wmiprvse.exe": {
		Description: "WMI Provider Host",
		Publisher:   "Microsoft", Category: CategoryWindowsService, Tier: core.TierCaution,
		KillImpact: "Management queries fail until it restarts.",
	},

	// --- Microsoft shell and background helpers ---
	"conhost.exe":                  {Description: "Console Window Host", Publisher: "Microsoft", Category: CategoryBackgroundApp},
	"runtimebroker.exe":            {Description: "Permission broker for Store apps", Publisher: "Microsoft", Category: CategoryBackgroundApp},
	"backgroundtaskhost.exe":       {Description: "Background task host for Store apps", Publisher: "Microsoft", Category: CategoryBackgroundApp},
	"applicationframehost.exe":     {Description: "Window frames for Store apps", Publisher: "Microsoft", Category: CategoryBackgroundApp},
	"shellexperiencehost.exe":      {Description: "Windows Shell Experience Host", Publisher: "Microsoft", Category: CategoryBackgroundApp},
	"startmenuexperiencehost.exe":  {Description: "Start menu process", Publisher: "Microsoft", Category: CategoryBackgroundApp},
	"searchapp.exe":                {Description: "Windows Search UI", Publisher: "Microsoft", Category: CategoryBackgroundApp},
	"searchui.exe":                 {Description: "Cortana/Search UI", Publisher: "Microsoft", Category: CategoryBackgroundApp},
	"lockapp.exe":                  {Description: "Lock screen app", Publisher: "Microsoft", Category: CategoryBackgroundApp},
	"textinputhost.exe":            {Description: "Touch keyboard and input host", Publisher: "Microsoft", Category: CategoryBackgroundApp},
	"smartscreen.exe":              {Description: "Windows Defender SmartScreen", Publisher: "Microsoft", Category: CategoryBackgroundApp},
	"widgets.exe":                  {Description: "Windows Widgets", Publisher: "Microsoft", Category: CategoryBackgroundApp},
	"gamebar.exe":                  {Description: "Xbox Game Bar", Publisher: "Microsoft", Category: CategoryBackgroundApp},
	"phoneexperiencehost.exe":      {Description: "Phone Link host", Publisher: "Microsoft", Category: CategoryBackgroundApp},
	"yourphone.exe":                {Description: "Phone Link", Publisher: "Microsoft", Category: CategoryBackgroundApp},
	"securityhealthsystray.exe":    {Description: "Windows Security tray icon", Publisher: "Microsoft", Category: CategoryStartupItem},
	"werfault.exe":                 {Description: "Windows Error Reporting", Publisher: "Microsoft", Category: CategoryBackgroundApp},
	"werfaultsecure.exe":           {Description: "Secure Windows Error Reporting", Publisher: "Microsoft", Category: CategoryBackgroundApp},
	"wermgr.exe":                   {Description: "Windows Error Reporting manager", Publisher: "Microsoft", Category: CategoryBackgroundApp},
	"msedgewebview2.exe":           {Description: "Edge WebView2 — embedded browser runtime", Publisher: "Microsoft", Category: CategoryBackgroundApp},
	"crashpad_handler.exe":         {Description: "Crash reporter helper", Publisher: "", Category: CategoryBackgroundApp},
	"wuauclt.exe":                  {Description: "Windows Update client", Publisher: "Microsoft", Category: CategoryBackgroundApp},
	"usoclient.exe":                {Description: "Update Session Orchestrator client", Publisher: "Microsoft", Category: CategoryBackgroundApp},
	"musnotifyicon.exe":            {Description: "Windows Update notification icon", Publisher: "Microsoft", Category: CategoryBackgroundApp},
	"compattelrunner.exe":          {Description: "Compatibility telemetry runner", Publisher: "Microsoft", Category: CategoryBackgroundApp},
	"printisolationhost.exe":       {Description: "Print driver isolation host", Publisher: "Microsoft", Category: CategoryBackgroundApp},
	"rundll32.exe":                 {Description: "Runs a function exported by a DLL", Publisher: "Microsoft", Category: CategoryBackgroundApp},
	"msiexec.exe":                  {Description: "Windows Installer", Publisher: "Microsoft", Category: CategoryBackgroundApp},
	"taskmgr.exe":                  {Description: "Task Manager", Publisher: "Microsoft", Category: CategoryUserApp},
	"regedit.exe":                  {Description: "Registry Editor", Publisher: "Microsoft", Category: CategoryUserApp},
	"mmc.exe":                      {Description: "Microsoft Management Console", Publisher: "Microsoft", Category: CategoryUserApp},
	"control.exe":                  {Description: "Control Panel", Publisher: "Microsoft", Category: CategoryUserApp},
	"notepad.exe":                  {Description: "Notepad text editor", Publisher: "Microsoft", Category: CategoryUserApp},
	"calc.exe":                     {Description: "Calculator", Publisher: "Microsoft", Category: CategoryUserApp},
	"mspaint.exe":                  {Description: "Paint", Publisher: "Microsoft", Category: CategoryUserApp},
	"snippingtool.exe":             {Description: "Snipping Tool", Publisher: "Microsoft", Category: CategoryUserApp},
	"cmd.exe":                      {Description: "Command Prompt", Publisher: "Microsoft", Category: CategoryUserApp},
	"powershell.exe":               {Description: "Windows PowerShell", Publisher: "Microsoft", Category: CategoryUserApp},
	"pwsh.exe":                     {Description: "PowerShell 7", Publisher: "Microsoft", Category: CategoryUserApp},
	"windowsterminal.exe":          {Description: "Windows Terminal", Publisher: "Microsoft", Category: CategoryUserApp},
	"wsl.exe":                      {Description: "Windows Subsystem for Linux launcher", Publisher: "Microsoft", Category: CategoryUserApp},
	"wslservice.exe":               {Description: "WSL background service", Publisher: "Microsoft", Category: CategoryWindowsService, Tier: core.TierCaution, KillImpact: "All running WSL distributions stop."},
	"onedrive.exe":                 {Description: "OneDrive sync client", Publisher: "Microsoft", Category: CategoryStartupItem, KillImpact: "File sync pauses until restarted."},

	// --- Browsers ---
	"chrome.exe":   {Description: "Google Chrome web browser", Publisher: "Google", Category: CategoryUserApp, KillImpact: "All Chrome windows and tabs close."},
	"msedge.exe":   {Description: "Microsoft Edge web browser", Publisher: "Microsoft", Category: CategoryUserApp, KillImpact: "All Edge windows and tabs close."},
	"firefox.exe":  {Description: "Mozilla Firefox web browser", Publisher: "Mozilla", Category: CategoryUserApp, KillImpact: "All Firefox windows close."},
	"brave.exe":    {Description: "Brave web browser", Publisher: "Brave Software", Category: CategoryUserApp},
	"opera.exe":    {Description: "Opera web browser", Publisher: "Opera", Category: CategoryUserApp},
	"vivaldi.exe":  {Description: "Vivaldi web browser", Publisher: "Vivaldi", Category: CategoryUserApp},
	"iexplore.exe": {Description: "Internet Explorer", Publisher: "Microsoft", Category: CategoryUserApp},

	// --- Communication ---
	"teams.exe":        {Description: "Microsoft Teams", Publisher: "Microsoft", Category: CategoryUserApp, KillImpact: "Active calls and chats disconnect."},
	"ms-teams.exe":     {Description: "Microsoft Teams (new)", Publisher: "Microsoft", Category: CategoryUserApp},
	"slack.exe":        {Description: "Slack messaging", Publisher: "Slack", Category: CategoryUserApp},
	"discord.exe":      {Description: "Discord voice and chat", Publisher: "Discord", Category: CategoryUserApp},
	"zoom.exe":         {Description: "Zoom video conferencing", Publisher: "Zoom", Category: CategoryUserApp, KillImpact: "You leave any meeting in progress."},
	"skype.exe":        {Description: "Skype", Publisher: "Microsoft", Category: CategoryUserApp},
	"telegram.exe":     {Description: "Telegram Desktop", Publisher: "Telegram", Category: CategoryUserApp},
	"whatsapp.exe":     {Description: "WhatsApp Desktop", Publisher: "Meta", Category: CategoryUserApp},
	"signal.exe":       {Description: "Signal messenger", Publisher: "Signal", Category: CategoryUserApp},
	"thunderbird.exe":  {Description: "Mozilla Thunderbird mail", Publisher: "Mozilla", Category: CategoryUserApp},
	"outlook.exe":      {Description: "Microsoft Outlook", Publisher: "Microsoft", Category: CategoryUserApp, KillImpact: "Unsent drafts may be lost."},

	// --- Media ---
	"spotify.exe":  {Description: "Spotify music player", Publisher: "Spotify", Category: CategoryUserApp, KillImpact: "Music playback stops."},
	"vlc.exe":      {Description: "VLC media player", Publisher: "VideoLAN", Category: CategoryUserApp},
	"wmplayer.exe": {Description: "Windows Media Player", Publisher: "Microsoft", Category: CategoryUserApp},
	"itunes.exe":   {Description: "Apple iTunes", Publisher: "Apple", Category: CategoryUserApp},
	"musicbee.exe": {Description: "MusicBee music manager", Publisher: "", Category: CategoryUserApp},
	"obs64.exe":    {Description: "OBS Studio — recording and streaming", Publisher: "OBS Project", Category: CategoryUserApp, KillImpact: "Any recording or stream in progress stops."},

	// --- Development tools ---
	"code.exe":          {Description: "Visual Studio Code", Publisher: "Microsoft", Category: CategoryUserApp, KillImpact: "Unsaved editor changes are lost."},
	"cursor.exe":        {Description: "Cursor editor", Publisher: "", Category: CategoryUserApp},
	"devenv.exe":        {Description: "Visual Studio IDE", Publisher: "Microsoft", Category: CategoryUserApp, KillImpact: "Unsaved work and running debug sessions are lost."},
	"idea64.exe":        {Description: "IntelliJ IDEA", Publisher: "JetBrains", Category: CategoryUserApp},
	"pycharm64.exe":     {Description: "PyCharm IDE", Publisher: "JetBrains", Category: CategoryUserApp},
	"webstorm64.exe":    {Description: "WebStorm IDE", Publisher: "JetBrains", Category: CategoryUserApp},
	"rider64.exe":       {Description: "JetBrains Rider IDE", Publisher: "JetBrains", Category: CategoryUserApp},
	"clion64.exe":       {Description: "CLion IDE", Publisher: "JetBrains", Category: CategoryUserApp},
	"goland64.exe":      {Description: "GoLand IDE", Publisher: "JetBrains", Category: CategoryUserApp},
	"sublime_text.exe":  {Description: "Sublime Text editor", Publisher: "Sublime HQ", Category: CategoryUserApp},
	"notepad++.exe":     {Description: "Notepad++ editor", Publisher: "Notepad++", Category: CategoryUserApp},
	"python.exe":        {Description: "Python interpreter", Publisher: "Python Software Foundation", Category: CategoryUserApp},
	"pythonw.exe":       {Description: "Python interpreter (no console)", Publisher: "Python Software Foundation", Category: CategoryUserApp},
	"node.exe":          {Description: "Node.js JavaScript runtime", Publisher: "OpenJS Foundation", Category: CategoryUserApp},
	"java.exe":          {Description: "Java runtime", Publisher: "Oracle", Category: CategoryUserApp},
	"javaw.exe":         {Description: "Java runtime (no console)", Publisher: "Oracle", Category: CategoryUserApp},
	"ruby.exe":          {Description: "Ruby interpreter", Publisher: "", Category: CategoryUserApp},
	"perl.exe":          {Description: "Perl interpreter", Publisher: "", Category: CategoryUserApp},
	"php.exe":           {Description: "PHP interpreter", Publisher: "", Category: CategoryUserApp},
	"dotnet.exe":        {Description: ".NET host", Publisher: "Microsoft", Category: CategoryUserApp},
	"msbuild.exe":       {Description: "Microsoft Build Engine", Publisher: "Microsoft", Category: CategoryUserApp},
	"git.exe":           {Description: "Git version control", Publisher: "Git", Category: CategoryUserApp},
	"bash.exe":          {Description: "Bash shell", Publisher: "", Category: CategoryUserApp},
	"go.exe":            {Description: "Go toolchain", Publisher: "Google", Category: CategoryUserApp},
	"cargo.exe":         {Description: "Rust package manager", Publisher: "", Category: CategoryUserApp},
	"rustc.exe":         {Description: "Rust compiler", Publisher: "", Category: CategoryUserApp},
	"gcc.exe":           {Description: "GNU C compiler", Publisher: "", Category: CategoryUserApp},
	"make.exe":          {Description: "GNU Make", Publisher: "", Category: CategoryUserApp},
	"adb.exe":           {Description: "Android Debug Bridge", Publisher: "Google", Category: CategoryUserApp},

	// --- Gaming ---
	"steam.exe":              {Description: "Steam game platform", Publisher: "Valve", Category: CategoryUserApp, KillImpact: "Running games lose Steam overlay and may exit."},
	"steamwebhelper.exe":     {Description: "Steam embedded browser helper", Publisher: "Valve", Category: CategoryBackgroundApp},
	"epicgameslauncher.exe":  {Description: "Epic Games Launcher", Publisher: "Epic Games", Category: CategoryUserApp},
	"origin.exe":             {Description: "EA Origin launcher", Publisher: "Electronic Arts", Category: CategoryUserApp},
	"eadesktop.exe":          {Description: "EA app", Publisher: "Electronic Arts", Category: CategoryUserApp},
	"battle.net.exe":         {Description: "Blizzard Battle.net launcher", Publisher: "Blizzard", Category: CategoryUserApp},
	"galaxyclient.exe":       {Description: "GOG Galaxy launcher", Publisher: "GOG", Category: CategoryUserApp},
	"riotclientservices.exe": {Description: "Riot Games client services", Publisher: "Riot Games", Category: CategoryBackgroundApp},
	"minecraft.exe":          {Description: "Minecraft Launcher", Publisher: "Mojang", Category: CategoryUserApp},

	// --- Office ---
	"winword.exe":  {Description: "Microsoft Word", Publisher: "Microsoft", Category: CategoryUserApp, KillImpact: "Unsaved documents are lost."},
	"excel.exe":    {Description: "Microsoft Excel", Publisher: "Microsoft", Category: CategoryUserApp, KillImpact: "Unsaved workbooks are lost."},
	"powerpnt.exe": {Description: "Microsoft PowerPoint", Publisher: "Microsoft", Category: CategoryUserApp},
	"onenote.exe":  {Description: "Microsoft OneNote", Publisher: "Microsoft", Category: CategoryUserApp},
	"msaccess.exe": {Description: "Microsoft Access", Publisher: "Microsoft", Category: CategoryUserApp},
	"mspub.exe":    {Description: "Microsoft Publisher", Publisher: "Microsoft", Category: CategoryUserApp},
	"acrobat.exe":  {Description: "Adobe Acrobat", Publisher: "Adobe", Category: CategoryUserApp},
	"acrord32.exe": {Description: "Adobe Acrobat Reader", Publisher: "Adobe", Category: CategoryUserApp},

	// --- Cloud storage ---
	"dropbox.exe":         {Description: "Dropbox sync client", Publisher: "Dropbox", Category: CategoryStartupItem, KillImpact: "File sync pauses."},
	"googledrivesync.exe": {Description: "Google Drive sync", Publisher: "Google", Category: CategoryStartupItem},
	"googledrivefs.exe":   {Description: "Google Drive for desktop", Publisher: "Google", Category: CategoryStartupItem},
	"box.exe":             {Description: "Box Drive", Publisher: "Box", Category: CategoryStartupItem},

	// --- Graphics / creative ---
	"photoshop.exe":   {Description: "Adobe Photoshop", Publisher: "Adobe", Category: CategoryUserApp, KillImpact: "Unsaved work is lost."},
	"illustrator.exe": {Description: "Adobe Illustrator", Publisher: "Adobe", Category: CategoryUserApp},
	"gimp-2.10.exe":   {Description: "GIMP image editor", Publisher: "GIMP", Category: CategoryUserApp},
	"blender.exe":     {Description: "Blender 3D", Publisher: "Blender Foundation", Category: CategoryUserApp},
	"figma.exe":       {Description: "Figma design tool", Publisher: "Figma", Category: CategoryUserApp},

	// --- Vendor drivers and utilities ---
	"nvcontainer.exe":        {Description: "NVIDIA Container — driver helper services", Publisher: "NVIDIA", Category: CategoryBackgroundApp},
	"nvidia share.exe":       {Description: "NVIDIA Share (ShadowPlay)", Publisher: "NVIDIA", Category: CategoryBackgroundApp},
	"nvdisplay.container.exe": {Description: "NVIDIA display driver container", Publisher: "NVIDIA", Category: CategoryBackgroundApp},
	"radeonsoftware.exe":     {Description: "AMD Radeon Software", Publisher: "AMD", Category: CategoryBackgroundApp},
	"igfxem.exe":             {Description: "Intel Graphics Executable Main Module", Publisher: "Intel", Category: CategoryBackgroundApp},
	"rtkauduservice64.exe":   {Description: "Realtek Audio Universal Service", Publisher: "Realtek", Category: CategoryBackgroundApp},
	"syntpenh.exe":           {Description: "Synaptics TouchPad enhancements", Publisher: "Synaptics", Category: CategoryStartupItem},
	"logioptionsplus.exe":    {Description: "Logitech Options+", Publisher: "Logitech", Category: CategoryStartupItem},
	"lghub.exe":              {Description: "Logitech G HUB", Publisher: "Logitech", Category: CategoryStartupItem},
	"razer synapse 3.exe":    {Description: "Razer Synapse", Publisher: "Razer", Category: CategoryStartupItem},
	"icue.exe":               {Description: "Corsair iCUE", Publisher: "Corsair", Category: CategoryStartupItem},

	// --- Virtualization / containers ---
	"vmware.exe":            {Description: "VMware Workstation", Publisher: "VMware", Category: CategoryUserApp},
	"vmware-vmx.exe":        {Description: "VMware virtual machine monitor", Publisher: "VMware", Category: CategoryUserApp, Tier: core.TierCaution, KillImpact: "The virtual machine powers off without shutdown."},
	"vmtoolsd.exe":          {Description: "VMware Tools daemon", Publisher: "VMware", Category: CategoryBackgroundApp},
	"virtualbox.exe":        {Description: "Oracle VirtualBox manager", Publisher: "Oracle", Category: CategoryUserApp},
	"virtualboxvm.exe":      {Description: "VirtualBox virtual machine", Publisher: "Oracle", Category: CategoryUserApp, Tier: core.TierCaution, KillImpact: "The virtual machine powers off without shutdown."},
	"vboxservice.exe":       {Description: "VirtualBox guest service", Publisher: "Oracle", Category: CategoryBackgroundApp},
	"docker desktop.exe":    {Description: "Docker Desktop", Publisher: "Docker", Category: CategoryUserApp, KillImpact: "Running containers stop."},
	"com.docker.backend.exe": {Description: "Docker Desktop backend", Publisher: "Docker", Category: CategoryBackgroundApp, Tier: core.TierCaution, KillImpact: "Running containers stop."},
	"vmmem":                 {Description: "Memory used by WSL2/Hyper-V virtual machines", Publisher: "Microsoft", Category: CategoryBackgroundApp, Tier: core.TierCaution, KillImpact: "Cannot be killed directly; shut down the VM instead."},

	// --- Archivers and misc utilities ---
	"winrar.exe":      {Description: "WinRAR archiver", Publisher: "RARLAB", Category: CategoryUserApp},
	"7zfm.exe":        {Description: "7-Zip File Manager", Publisher: "Igor Pavlov", Category: CategoryUserApp},
	"winzip64.exe":    {Description: "WinZip archiver", Publisher: "Corel", Category: CategoryUserApp},
	"everything.exe":  {Description: "Everything file search", Publisher: "voidtools", Category: CategoryUserApp},
	"sharex.exe":      {Description: "ShareX screen capture", Publisher: "ShareX Team", Category: CategoryUserApp},
	"greenshot.exe":   {Description: "Greenshot screen capture", Publisher: "Greenshot", Category: CategoryUserApp},
	"keepass.exe":     {Description: "KeePass password manager", Publisher: "Dominik Reichl", Category: CategoryUserApp},
	"1password.exe":   {Description: "1Password password manager", Publisher: "AgileBits", Category: CategoryUserApp},
	"bitwarden.exe":   {Description: "Bitwarden password manager", Publisher: "Bitwarden", Category: CategoryUserApp},
	"autohotkey.exe":  {Description: "AutoHotkey script host", Publisher: "AutoHotkey Foundation", Category: CategoryUserApp},
	"rainmeter.exe":   {Description: "Rainmeter desktop customization", Publisher: "Rainmeter", Category: CategoryStartupItem},
	"f.lux.exe":       {Description: "f.lux screen color adjuster", Publisher: "f.lux Software", Category: CategoryStartupItem},
	"procwarden.exe":  {Description: "ProcWarden process monitor (this program)", Publisher: "", Category: CategoryUserApp},
}

// knownServices maps service names hosted by svchost.exe to friendly
// descriptions, keyed lowercase.
var knownServices = map[string]string{
	"wuauserv":            "Windows Update",
	"bits":                "Background file transfers (BITS)",
	"dnscache":            "DNS name resolution cache",
	"dhcp":                "DHCP network address assignment",
	"eventlog":            "Windows Event Log",
	"schedule":            "Task Scheduler",
	"themes":              "Desktop themes",
	"audiosrv":            "Windows Audio",
	"audioendpointbuilder": "Audio device management",
	"wlansvc":             "Wi-Fi configuration (WLAN AutoConfig)",
	"winmgmt":             "Windows Management Instrumentation",
	"rpcss":               "Remote Procedure Call (RPC) — core IPC",
	"dcomlaunch":          "DCOM Server Process Launcher — core IPC",
	"plugplay":            "Plug and Play device management",
	"power":               "Power management",
	"profsvc":             "User Profile Service",
	"netman":              "Network connections",
	"nlasvc":              "Network Location Awareness",
	"wscsvc":              "Security Center",
	"cryptsvc":            "Cryptographic Services",
	"spooler":             "Print Spooler",
	"lanmanworkstation":   "Network file sharing client",
	"lanmanserver":        "Network file sharing server",
	"sysmain":             "Memory prefetch and preload (SysMain)",
	"wsearch":             "Windows Search indexing",
	"diagtrack":           "Connected User Experiences and Telemetry",
	"usosvc":              "Update Session Orchestrator",
	"dosvc":               "Delivery Optimization downloads",
	"termservice":         "Remote Desktop Services",
	"winhttpautoproxysvc": "Web proxy auto-discovery",
	"shellhwdetection":    "Shell hardware detection (autoplay)",
	"eventsystem":         "COM+ Event System",
	"fontcache":           "Windows Font Cache",
	"stisvc":              "Still image acquisition (scanners/cameras)",
}
