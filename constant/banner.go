package constant

// Banner is printed above the root command's long help.
const Banner = `
   __ _  _ __  (_) ___  | |_  _ __  ___   __ _  _ __ ___
  / _' || '_ \ | |/ __| | __|| '__|/ _ \ / _' || '_ ' _ \
 | (_| || | | || |\__ \ | |_ | |  |  __/| (_| || | | | | |
  \__,_||_| |_||_||___/  \__||_|   \___| \__,_||_| |_| |_|`
