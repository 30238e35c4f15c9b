package quiz

// Static question banks, one per difficulty tier. Served whenever the
// generation service fails, so a quiz request never fails outright.

var fallbackEasy = []Question{
	{Question: "If you earn 10 coins and spend 6, how many coins are left?", Choices: []string{"2", "3", "4", "6"}, CorrectIndex: 2, Explanation: "10 - 6 = 4 coins left."},
	{Question: "Which is a NEED?", Choices: []string{"Candy", "Rent", "Video game", "New shoes for style"}, CorrectIndex: 1, Explanation: "Rent/shelter is a need."},
	{Question: "What does saving money mean?", Choices: []string{"Spending it all", "Keeping some for later", "Giving it away", "Losing it"}, CorrectIndex: 1, Explanation: "Saving means keeping some money for later."},
	{Question: "You have 20 coins. A toy costs 25. Can you buy it?", Choices: []string{"Yes", "No, you need 5 more", "Yes, with 5 left over", "Only on weekends"}, CorrectIndex: 1, Explanation: "25 - 20 = 5 coins short."},
	{Question: "Where is a safe place to keep saved money?", Choices: []string{"On the sidewalk", "A piggy bank or savings account", "In your shoe at the pool", "Loose in a backpack"}, CorrectIndex: 1, Explanation: "A piggy bank or savings account keeps money safe."},
	{Question: "Which is a WANT?", Choices: []string{"Water", "A winter coat", "An ice cream cone", "A place to live"}, CorrectIndex: 2, Explanation: "Ice cream is nice to have, not a need."},
	{Question: "If you save 2 coins every day, how many do you have after 5 days?", Choices: []string{"5", "7", "10", "12"}, CorrectIndex: 2, Explanation: "2 x 5 = 10 coins."},
	{Question: "What is a budget?", Choices: []string{"A kind of bird", "A plan for your money", "A type of coin", "A bank building"}, CorrectIndex: 1, Explanation: "A budget is a plan for how to use your money."},
	{Question: "A snack costs 3 coins. You pay with 5. How much change?", Choices: []string{"1", "2", "3", "5"}, CorrectIndex: 1, Explanation: "5 - 3 = 2 coins back."},
	{Question: "Why compare prices before buying?", Choices: []string{"To spend more", "To find a fair price", "Because it is a rule", "To make shopping slower"}, CorrectIndex: 1, Explanation: "Comparing helps you find a fair price."},
}

var fallbackMedium = []Question{
	{Question: "You get 50 coins allowance. You save 20%. How many coins saved?", Choices: []string{"5", "10", "15", "20"}, CorrectIndex: 1, Explanation: "20% of 50 is 10."},
	{Question: "What is a deadline on a bill?", Choices: []string{"The day the bill was printed", "The last day to pay it", "The first day of the month", "A bank holiday"}, CorrectIndex: 1, Explanation: "A deadline is the last day you can pay."},
	{Question: "What can happen if a bill is paid late?", Choices: []string{"Nothing ever", "You may pay an extra fee", "The bill disappears", "You get a discount"}, CorrectIndex: 1, Explanation: "Late payments often add a fee."},
	{Question: "Which choice stretches 30 coins the furthest for lunches all week?", Choices: []string{"One 30-coin lunch", "Five 6-coin lunches", "Two 15-coin lunches", "Skipping lunch"}, CorrectIndex: 1, Explanation: "Five 6-coin lunches cover the whole week."},
	{Question: "What does 'income' mean?", Choices: []string{"Money you owe", "Money coming in", "Money you lost", "A kind of tax"}, CorrectIndex: 1, Explanation: "Income is money you receive."},
	{Question: "You want a 90-coin game and save 15 coins a week. How many weeks?", Choices: []string{"4", "5", "6", "9"}, CorrectIndex: 2, Explanation: "90 / 15 = 6 weeks."},
	{Question: "Which is the best first step when making a budget?", Choices: []string{"Spend everything first", "List money in and money out", "Borrow from a friend", "Ignore small costs"}, CorrectIndex: 1, Explanation: "A budget starts with what comes in and goes out."},
	{Question: "A 40-coin jacket is 25% off. What does it cost?", Choices: []string{"10", "25", "30", "35"}, CorrectIndex: 2, Explanation: "25% of 40 is 10, so 40 - 10 = 30."},
	{Question: "Why keep a small emergency fund?", Choices: []string{"To buy more games", "For surprise costs", "Banks require it", "To impress friends"}, CorrectIndex: 1, Explanation: "An emergency fund covers surprise costs."},
	{Question: "What does 'needs before wants' mean?", Choices: []string{"Buy fun things first", "Cover essentials first", "Never buy wants", "Wants are free"}, CorrectIndex: 1, Explanation: "Pay for essentials before extras."},
}

var fallbackHard = []Question{
	{Question: "You earn 120 coins monthly. Rent-share is 60, food 30. What is left to save or spend?", Choices: []string{"10", "20", "30", "60"}, CorrectIndex: 2, Explanation: "120 - 60 - 30 = 30 coins."},
	{Question: "What is interest on savings?", Choices: []string{"A fee for saving", "Extra money the bank pays you", "A kind of bill", "A spending limit"}, CorrectIndex: 1, Explanation: "Banks pay interest on money you keep saved."},
	{Question: "A benefits letter says 'respond within 14 days'. What is the safest move?", Choices: []string{"Wait a month", "Respond before day 14 and ask a trusted adult", "Throw it away", "Respond only if reminded"}, CorrectIndex: 1, Explanation: "Act before the deadline and get help from a trusted adult."},
	{Question: "Which purchase plan avoids debt?", Choices: []string{"Borrow now, worry later", "Save first, buy when you have enough", "Pay minimums forever", "Ignore the price"}, CorrectIndex: 1, Explanation: "Saving first means no debt."},
	{Question: "A phone plan costs 25 coins/month plus a 10-coin start fee. Cost for 3 months?", Choices: []string{"75", "85", "95", "105"}, CorrectIndex: 1, Explanation: "25 x 3 + 10 = 85 coins."},
	{Question: "What does 'due date' mean on an official form?", Choices: []string{"The date it was mailed", "The date action is required by", "A suggestion", "The office's opening day"}, CorrectIndex: 1, Explanation: "The due date is when action is required."},
	{Question: "Fixed vs variable costs: which is fixed?", Choices: []string{"Movie tickets", "Monthly bus pass", "Snacks", "Game add-ons"}, CorrectIndex: 1, Explanation: "A bus pass costs the same every month."},
	{Question: "You save 10% of every 80-coin paycheck. After 5 paychecks you have saved:", Choices: []string{"8", "20", "40", "80"}, CorrectIndex: 2, Explanation: "8 coins per paycheck x 5 = 40."},
	{Question: "Why read a form before signing it?", Choices: []string{"To find spelling errors", "To know what you are agreeing to", "Signatures are optional", "Forms are always safe"}, CorrectIndex: 1, Explanation: "Signing means agreeing, so know the terms."},
	{Question: "Who is a good person to ask about a confusing money letter?", Choices: []string{"A stranger online", "A trusted adult or case worker", "Nobody", "The letter itself"}, CorrectIndex: 1, Explanation: "A trusted adult or case worker can help safely."},
}

// fallbackQuestions returns a copy of the bank for the tier.
func fallbackQuestions(difficulty string) []Question {
	var bank []Question
	switch difficulty {
	case "hard":
		bank = fallbackHard
	case "medium":
		bank = fallbackMedium
	default:
		bank = fallbackEasy
	}
	out := make([]Question, len(bank))
	copy(out, bank)
	return out
}
